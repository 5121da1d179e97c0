package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/aretw0/magazine/internal/logging"
	"github.com/aretw0/magazine/internal/presentation/tui"
	"github.com/aretw0/magazine/pkg/runner"
	"golang.org/x/term"
)

// definitionCandidates are tried in order when a directory holds several definitions.
var definitionCandidates = []string{"automaton", "main", "index"}

// documentExtensions are the extensions a directory definition may carry.
var documentExtensions = []string{".md", ".yaml", ".yml", ".json"}

// createLogger configures the application logger.
// In debug mode, it writes to Stderr (to separate from Stdout flow UI).
func createLogger(debug bool) *slog.Logger {
	if debug {
		return logging.New(logging.Options{Level: slog.LevelDebug})
	}
	return logging.New(logging.Options{Level: slog.LevelWarn})
}

// printSystemMessage prints a standardized system message.
func printSystemMessage(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, ">>> %s\n", fmt.Sprintf(format, args...))
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}

// interactive reports whether both ends of the REPL are a terminal.
func interactive(in io.Reader, out io.Writer) bool {
	fin, ok := in.(*os.File)
	if !ok {
		return false
	}
	fout, ok := out.(*os.File)
	return ok && isTerminal(fin) && isTerminal(fout)
}

// determineDefinitionID picks the conventional entry definition of a directory: automaton,
// main, index, then a file named after the directory. Empty means no convention applies.
func determineDefinitionID(dir string) string {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return ""
	}
	candidates := append(append([]string{}, definitionCandidates...), filepath.Base(dir))
	for _, id := range candidates {
		for _, ext := range documentExtensions {
			if _, err := os.Stat(filepath.Join(dir, id+ext)); err == nil {
				return id
			}
		}
	}
	return ""
}

// newIOHandler builds the REPL handler for the options and streams.
func newIOHandler(opts RunOptions, in io.Reader, out io.Writer) runner.IOHandler {
	if opts.JSON {
		return runner.NewJSONHandler(in, out)
	}
	textOpts := []runner.TextHandlerOption{runner.WithTrace(opts.Trace)}
	if interactive(in, out) {
		textOpts = append(textOpts,
			runner.WithColor(true),
			runner.WithTextHandlerRenderer(tui.NewDerivationRenderer()),
		)
	}
	return runner.NewTextHandler(in, out, textOpts...)
}
