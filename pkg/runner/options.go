package runner

import (
	"log/slog"
)

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.Logger = logger
	}
}

// WithInputHandler configures a custom IOHandler.
func WithInputHandler(handler IOHandler) Option {
	return func(r *Runner) {
		r.Handler = handler
	}
}

// WithMaxInputSize bounds the size of one input line in bytes.
func WithMaxInputSize(limit int) Option {
	return func(r *Runner) {
		r.MaxInputSize = limit
	}
}

// WithAlphabetCheck warns about symbols outside the input alphabet before evaluating.
func WithAlphabetCheck(check bool) Option {
	return func(r *Runner) {
		r.CheckAlphabet = check
	}
}

// WithSignals makes SIGINT interrupt the current evaluation instead of the process.
func WithSignals(enabled bool) Option {
	return func(r *Runner) {
		r.Signals = enabled
	}
}
