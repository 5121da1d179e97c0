package runner

import (
	"context"

	"github.com/aretw0/magazine/pkg/domain"
)

// Request is one word to evaluate.
type Request struct {
	// Raw is the text as typed, used for display.
	Raw  string
	Word domain.Word
	// MaxTicks overrides the evaluator budget when set.
	MaxTicks *int
	// Trace asks for the derivation to be shown.
	Trace bool
}

// IOHandler defines the strategy for interacting with the user.
// This allows switching between Text (CLI/TUI) and JSON (Structured) modes.
type IOHandler interface {
	// Input reads one raw line. It returns io.EOF when the input is exhausted.
	Input(ctx context.Context) (string, error)

	// Decode turns a sanitised line into a request.
	Decode(line string) (Request, error)

	// Output presents the result of one evaluation.
	Output(ctx context.Context, report *Report) error

	// SystemOutput presents a meta-message to the user (e.g. warnings, status updates).
	// This is distinct from verdict rendering.
	SystemOutput(ctx context.Context, msg string) error
}
