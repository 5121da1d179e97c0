package runner

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/aretw0/magazine/internal/compiler"
	"github.com/aretw0/magazine/pkg/domain"
	"github.com/muesli/termenv"
)

// DerivationRenderer formats an accepting path for display.
// This allows for TUI rendering (markdown to ANSI) without coupling the core package.
type DerivationRenderer func([]domain.Snapshot) (string, error)

// TextHandler implements the prompted, human-readable interface.
type TextHandler struct {
	Reader   *bufio.Reader
	Writer   io.Writer
	Prompt   string
	Trace    bool
	Renderer DerivationRenderer
	// Profile colours verdict lines. termenv.Ascii (the default) prints plain text.
	Profile termenv.Profile

	inputChan chan inputResult
	startOnce sync.Once
}

type inputResult struct {
	text string
	err  error
}

// TextHandlerOption defines configuration for TextHandler.
type TextHandlerOption func(*TextHandler)

// WithTrace prints the derivation of accepted words.
func WithTrace(trace bool) TextHandlerOption {
	return func(h *TextHandler) {
		h.Trace = trace
	}
}

// WithTextHandlerRenderer configures how derivations are printed.
func WithTextHandlerRenderer(renderer DerivationRenderer) TextHandlerOption {
	return func(h *TextHandler) {
		h.Renderer = renderer
	}
}

// WithColor colours verdict lines using the terminal's colour profile.
func WithColor(enabled bool) TextHandlerOption {
	return func(h *TextHandler) {
		if enabled {
			h.Profile = termenv.EnvColorProfile()
		} else {
			h.Profile = termenv.Ascii
		}
	}
}

// WithPrompt replaces the input prompt.
func WithPrompt(prompt string) TextHandlerOption {
	return func(h *TextHandler) {
		h.Prompt = prompt
	}
}

// NewTextHandler creates a handler for standard text IO.
func NewTextHandler(r io.Reader, w io.Writer, opts ...TextHandlerOption) *TextHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	h := &TextHandler{
		Reader: bufio.NewReader(r),
		Writer: w,
		Prompt:  "Insert word: ",
		Profile: termenv.Ascii,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *TextHandler) initPump() {
	h.startOnce.Do(func() {
		h.inputChan = make(chan inputResult)
		go h.pump()
	})
}

// pump reads in the background so a blocked read never holds up cancellation.
func (h *TextHandler) pump() {
	for {
		text, err := h.Reader.ReadString('\n')
		if text != "" {
			h.inputChan <- inputResult{text: text}
		}
		if err != nil {
			if err != io.EOF {
				h.inputChan <- inputResult{err: err}
			}
			close(h.inputChan)
			return
		}
	}
}

func (h *TextHandler) Input(ctx context.Context) (string, error) {
	h.initPump()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
		fmt.Fprint(h.Writer, h.Prompt)
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res, ok := <-h.inputChan:
		if !ok {
			return "", io.EOF
		}
		if res.err != nil {
			return "", res.err
		}
		return strings.TrimSpace(res.text), nil
	}
}

func (h *TextHandler) Decode(line string) (Request, error) {
	return Request{
		Raw:   line,
		Word:  compiler.ParseWord(line),
		Trace: h.Trace,
	}, nil
}

func (h *TextHandler) Output(ctx context.Context, report *Report) error {
	fmt.Fprintf(h.Writer, "Read word: %s\n", displayWord(report))
	if len(report.Unknown) > 0 {
		fmt.Fprintf(h.Writer, "Warning: symbols outside the input alphabet: %s\n", joinSymbols(report.Unknown))
	}

	switch {
	case report.Error != "":
		fmt.Fprintf(h.Writer, "Error: %s\n", report.Error)
	case report.Outcome == domain.OutcomeAccepted:
		h.verdictLine("#22c55e", "Accepted word %s after %d ticks", displayWord(report), report.Ticks)
		if len(report.Derivation) > 0 {
			h.printDerivation(report.Derivation)
		}
	case report.Outcome == domain.OutcomeRejected:
		h.verdictLine("#ef4444", "Rejected word %s after %d ticks", displayWord(report), report.Ticks)
	case report.Outcome == domain.OutcomeTickLimitExceeded:
		h.verdictLine("#eab308", "Word %s reached tick limit (%d ticks)", displayWord(report), report.Limit)
	}
	return nil
}

func (h *TextHandler) verdictLine(color, format string, args ...any) {
	line := fmt.Sprintf(format, args...)
	if h.Profile == termenv.Ascii {
		fmt.Fprintln(h.Writer, line)
		return
	}
	fmt.Fprintln(h.Writer, h.Profile.String(line).Foreground(h.Profile.Color(color)))
}

func (h *TextHandler) printDerivation(path []domain.Snapshot) {
	if h.Renderer != nil {
		if out, err := h.Renderer(path); err == nil {
			fmt.Fprintln(h.Writer, strings.TrimSpace(out))
			return
		}
	}
	for i, s := range path {
		fmt.Fprintf(h.Writer, "  %d. %s\n", i, s)
	}
}

func (h *TextHandler) SystemOutput(ctx context.Context, msg string) error {
	_, err := fmt.Fprintln(h.Writer, msg)
	return err
}

func displayWord(r *Report) string {
	if len(r.Symbols) == 0 {
		return domain.Word(nil).String()
	}
	return r.Word
}

func joinSymbols(syms []domain.Symbol) string {
	parts := make([]string, len(syms))
	for i, s := range syms {
		parts[i] = string(s)
	}
	return strings.Join(parts, ", ")
}
