package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/magazine/pkg/domain"
)

// LoggingHooks logs every lifecycle event at Debug level.
// The frontier is logged in full, so this is meant for tracing small automata.
func LoggingHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnReset: func(ctx context.Context, e *domain.ResetEvent) {
			logger.DebugContext(ctx, "reset", "word", e.Word.String(), "limit", e.Limit)
		},
		OnTick: func(ctx context.Context, e *domain.TickEvent) {
			logger.DebugContext(ctx, "tick", "tick", e.Tick, "size", len(e.Frontier), "frontier", e.Frontier)
		},
		OnVerdict: func(ctx context.Context, e *domain.VerdictEvent) {
			logger.DebugContext(ctx, "verdict", "word", e.Word.String(), "outcome", e.Outcome, "ticks", e.Ticks, "duration", e.Duration, "cached", e.Cached)
		},
	}
}
