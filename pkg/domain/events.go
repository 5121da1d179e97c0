package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventReset   EventType = "reset"
	EventTick    EventType = "tick"
	EventVerdict EventType = "verdict"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// ResetEvent is emitted when the engine starts evaluating a word.
type ResetEvent struct {
	EventBase
	Word  Word `json:"word"`
	Limit int  `json:"limit"`
}

// TickEvent is emitted after every tick with the new frontier.
type TickEvent struct {
	EventBase
	Tick     int        `json:"tick"`
	Frontier []Snapshot `json:"frontier"`
}

// VerdictEvent is emitted once per evaluation when it ends.
type VerdictEvent struct {
	EventBase
	Word     Word          `json:"word"`
	Outcome  Outcome       `json:"outcome"`
	Ticks    int           `json:"ticks"`
	Duration time.Duration `json:"duration"`
	// Cached is set when the verdict came from the verdict cache without a search.
	Cached bool `json:"cached,omitempty"`
}

// LifecycleHooks defines callbacks for engine observability.
// Hooks are observational only: nothing they do changes the outcome of an evaluation.
type LifecycleHooks struct {
	OnReset   func(context.Context, *ResetEvent)
	OnTick    func(context.Context, *TickEvent)
	OnVerdict func(context.Context, *VerdictEvent)
}

// Merge returns hooks that call h first and then other.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnReset:   chain(h.OnReset, other.OnReset),
		OnTick:    chain(h.OnTick, other.OnTick),
		OnVerdict: chain(h.OnVerdict, other.OnVerdict),
	}
}

func chain[E any](a, b func(context.Context, E)) func(context.Context, E) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(ctx context.Context, e E) {
		a(ctx, e)
		b(ctx, e)
	}
}
