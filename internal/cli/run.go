package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/magazine"
	"github.com/aretw0/magazine/internal/presentation/tui"
	"github.com/aretw0/magazine/pkg/runner"
)

// Execute handles the 'run' command: a REPL over stdin/stdout, optionally hot-reloading the
// definition when it changes on disk.
func Execute(ctx context.Context, opts RunOptions) error {
	return RunSession(ctx, opts, os.Stdin, os.Stdout)
}

// RunSession reads words from in until EOF or a quit command and reports verdicts to out.
func RunSession(ctx context.Context, opts RunOptions, in io.Reader, out io.Writer) error {
	logger := createLogger(opts.Debug)

	engine, err := createEngine(opts, logger)
	if err != nil {
		return err
	}

	showChrome := !opts.JSON && interactive(in, out)
	if showChrome {
		tui.PrintBanner(out, magazine.Version)
		def := engine.Definition()
		printSystemMessage(out, "Loaded '%s' (%d states, %d transitions, %s acceptance).",
			def.Name, len(def.States), len(def.Transitions), def.AcceptanceMode())
	}

	if opts.Watch {
		changes, err := engine.Watch(ctx)
		if err != nil {
			return fmt.Errorf("--watch requires a definition directory: %w", err)
		}
		go watchDefinitions(ctx, engine, changes, out, logger)
		if showChrome {
			printSystemMessage(out, "Watching '%s' for changes.", opts.Path)
		}
	}

	r := runner.NewRunner(
		runner.WithLogger(logger),
		runner.WithInputHandler(newIOHandler(opts, in, out)),
		runner.WithMaxInputSize(opts.MaxInputSize),
		runner.WithAlphabetCheck(true),
		runner.WithSignals(in == os.Stdin),
	)

	err = r.Run(ctx, engine)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// watchDefinitions reloads the engine whenever its definition changes.
// A definition that fails to load leaves the previous one in use.
func watchDefinitions(ctx context.Context, engine *magazine.Engine, changes <-chan string, out io.Writer, logger *slog.Logger) {
	for {
		select {
		case <-ctx.Done():
			return
		case id, ok := <-changes:
			if !ok {
				return
			}
			if id != engine.Name {
				logger.Debug("ignoring change to another definition", "definition", id)
				continue
			}
			if err := engine.Reload(ctx); err != nil {
				logger.Error("reload failed", "definition", id, "err", err)
				printSystemMessage(out, "Reload of '%s' failed, keeping the previous definition: %v", id, err)
				continue
			}
			logger.Info("definition reloaded", "definition", id)
			printSystemMessage(out, "Reloaded '%s'.", id)
		}
	}
}
