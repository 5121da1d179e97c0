package cli

import (
	"context"
	"errors"
	"io"

	"github.com/aretw0/magazine/internal/validator"
	"github.com/aretw0/magazine/pkg/domain"
	"github.com/aretw0/magazine/pkg/runner"
)

// ErrNotAllAccepted is returned by Evaluate in strict mode when some word was not accepted.
var ErrNotAllAccepted = errors.New("not every word was accepted")

// Evaluate checks each word once and writes one report per word, in order.
func Evaluate(ctx context.Context, opts RunOptions, words []string, strict bool, out io.Writer) error {
	logger := createLogger(opts.Debug)
	engine, err := createEngine(opts, logger)
	if err != nil {
		return err
	}

	handler := newIOHandler(opts, nil, out)
	allAccepted := true
	for _, raw := range words {
		clean, err := runner.SanitizeInput(raw, opts.MaxInputSize)
		if err != nil {
			return err
		}
		req, err := handler.Decode(clean)
		if err != nil {
			return err
		}

		verdict, err := engine.AcceptsWord(ctx, req.Word)
		if err != nil && !errors.Is(err, domain.ErrTickLimitExceeded) {
			return err
		}
		report := runner.NewReport(req, verdict, err)
		report.Unknown = validator.CheckWord(engine.Definition(), req.Word)
		if report.Outcome != domain.OutcomeAccepted {
			allAccepted = false
		}
		if err := handler.Output(ctx, report); err != nil {
			return err
		}
	}

	if strict && !allAccepted {
		return ErrNotAllAccepted
	}
	return nil
}
