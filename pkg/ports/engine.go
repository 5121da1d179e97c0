package ports

import (
	"context"

	"github.com/aretw0/magazine/pkg/domain"
)

// Evaluator is the surface adapters (HTTP, MCP, REPL) use to query an automaton.
// Implementations must be safe for concurrent use.
type Evaluator interface {
	// AcceptsWord evaluates word under the default tick budget.
	// A budget overrun is reported as an error matching domain.ErrTickLimitExceeded.
	AcceptsWord(ctx context.Context, word domain.Word) (*domain.Verdict, error)

	// AcceptsWordWithin evaluates word under an explicit budget (non-positive means unbounded).
	AcceptsWordWithin(ctx context.Context, word domain.Word, maxTicks int) (*domain.Verdict, error)

	// Definition returns the automaton being evaluated.
	Definition() *domain.Definition

	// MaxTicks returns the default tick budget.
	MaxTicks() int
}
