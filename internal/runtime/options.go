package runtime

import (
	"log/slog"

	"github.com/aretw0/magazine/pkg/domain"
)

// DefaultMaxTicks is the tick budget used when none is configured.
const DefaultMaxTicks = 2000

// EngineOption defines a functional option for configuring the Engine.
type EngineOption func(*Engine)

// WithMaxTicks sets the tick budget. Non-positive values mean unbounded.
func WithMaxTicks(n int) EngineOption {
	return func(e *Engine) {
		e.maxTicks = n
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithParallelism bounds how many configurations are expanded concurrently during a tick.
// Values below 2 expand sequentially.
func WithParallelism(n int) EngineOption {
	return func(e *Engine) {
		e.parallelism = n
	}
}
