package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/magazine/internal/validator"
	"github.com/aretw0/magazine/pkg/domain"
	"github.com/aretw0/magazine/pkg/ports"
)

// quitCommands end the loop when typed alone on a line.
var quitCommands = map[string]bool{"quit": true, "exit": true, "q": true}

// Runner reads words, evaluates them and reports verdicts until input ends.
type Runner struct {
	// Handler is the strategy for IO. Defaults to a TextHandler on Stdin/Stdout.
	Handler IOHandler
	Logger  *slog.Logger

	// MaxInputSize bounds one input line in bytes (non-positive means DefaultMaxInputSize).
	MaxInputSize  int
	CheckAlphabet bool
	Signals       bool
}

// NewRunner creates a new Runner.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		MaxInputSize: DefaultMaxInputSize,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.Handler == nil {
		r.Handler = NewTextHandler(os.Stdin, os.Stdout)
	}
	return r
}

// Run drives the loop against ev. It returns nil when the input is exhausted, a quit command
// is read or the user interrupts at the prompt.
func (r *Runner) Run(ctx context.Context, ev ports.Evaluator) error {
	if ev == nil {
		return errors.New("runner: evaluator is required")
	}
	handler := r.Handler

	var sm *SignalManager
	if r.Signals {
		sm = NewSignalManager(ctx)
		defer sm.Stop()
	}
	// current is the context for the next blocking step; it is re-armed after an interrupt.
	current := func() context.Context {
		if sm != nil {
			return sm.Context()
		}
		return ctx
	}

	for {
		line, err := handler.Input(current())
		if err != nil {
			if sm != nil && errors.Is(err, io.EOF) {
				sm.CheckRace()
			}
			switch {
			case sm != nil && sm.Interrupted():
				_ = handler.SystemOutput(ctx, "Interrupted. Exiting.")
				return nil
			case errors.Is(err, io.EOF):
				return nil
			case ctx.Err() != nil:
				return ctx.Err()
			default:
				return fmt.Errorf("reading input: %w", err)
			}
		}

		if quitCommands[line] {
			return nil
		}

		clean, err := SanitizeInput(line, r.MaxInputSize)
		if err != nil {
			r.Logger.Warn("input rejected", "err", err)
			if err := handler.SystemOutput(ctx, fmt.Sprintf("Error: %v. Please try again.", err)); err != nil {
				return err
			}
			continue
		}

		req, err := handler.Decode(clean)
		if err != nil {
			if err := handler.SystemOutput(ctx, fmt.Sprintf("Error: %v", err)); err != nil {
				return err
			}
			continue
		}

		report := r.evaluate(current(), ev, req)

		if sm != nil && sm.Interrupted() {
			r.Logger.Info("evaluation interrupted", "word", req.Raw)
			if err := handler.SystemOutput(ctx, "Evaluation interrupted."); err != nil {
				return err
			}
			sm.Reset()
			continue
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		if err := handler.Output(ctx, report); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	}
}

func (r *Runner) evaluate(ctx context.Context, ev ports.Evaluator, req Request) *Report {
	var (
		verdict *domain.Verdict
		err     error
	)
	if req.MaxTicks != nil {
		verdict, err = ev.AcceptsWordWithin(ctx, req.Word, *req.MaxTicks)
	} else {
		verdict, err = ev.AcceptsWord(ctx, req.Word)
	}

	report := NewReport(req, verdict, err)
	if r.CheckAlphabet {
		report.Unknown = validator.CheckWord(ev.Definition(), req.Word)
	}
	r.Logger.Debug("word evaluated",
		"word", req.Raw,
		"outcome", report.Outcome,
		"ticks", report.Ticks,
	)
	return report
}
