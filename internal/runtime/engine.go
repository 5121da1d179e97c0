package runtime

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/magazine/pkg/domain"
	"golang.org/x/sync/errgroup"
)

// Status is the phase of the engine for the word currently loaded.
type Status string

const (
	StatusIdle              Status = "idle"
	StatusExploring         Status = "exploring"
	StatusAccepted          Status = "accepted"
	StatusRejected          Status = "rejected"
	StatusTickLimitExceeded Status = "tick_limit_exceeded"
)

// Engine simulates a magazine automaton over one word at a time.
//
// An Engine is not safe for concurrent use: it owns its frontier and tick counter.
// Create one Engine per goroutine; they can share the same Definition.
type Engine struct {
	def         *domain.Definition
	byState     map[domain.State][]domain.Transition
	checker     *AcceptanceChecker
	maxTicks    int
	parallelism int
	hooks       domain.LifecycleHooks
	logger      *slog.Logger

	frontier *ConfigurationSet
	ticks    int
	status   Status
}

// NewEngine creates an engine for def. The definition must satisfy Definition.Validate.
func NewEngine(def *domain.Definition, opts ...EngineOption) *Engine {
	e := &Engine{
		def:      def,
		byState:  make(map[domain.State][]domain.Transition),
		checker:  NewAcceptanceChecker(def),
		maxTicks: DefaultMaxTicks,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		frontier: NewConfigurationSet(),
		status:   StatusIdle,
	}
	for _, t := range def.Transitions {
		e.byState[t.FromState] = append(e.byState[t.FromState], t)
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Definition returns the automaton being simulated.
func (e *Engine) Definition() *domain.Definition {
	return e.def
}

// MaxTicks returns the configured budget (non-positive means unbounded).
func (e *Engine) MaxTicks() int {
	return e.maxTicks
}

// Ticks returns the number of ticks since the last Reset.
func (e *Engine) Ticks() int {
	return e.ticks
}

// Status returns the current phase.
func (e *Engine) Status() Status {
	return e.status
}

// Frontier returns the current set of reachable configurations.
func (e *Engine) Frontier() *ConfigurationSet {
	return e.frontier
}

// Reset loads word and replaces the frontier with the initial configuration.
func (e *Engine) Reset(ctx context.Context, word domain.Word) {
	e.ticks = 0
	e.status = StatusIdle
	e.frontier = NewConfigurationSet(domain.NewConfiguration(
		e.def.InitialState,
		word,
		domain.Stack{e.def.InitialStackSymbol},
	))

	e.logger.Debug("engine reset", "word_len", len(word), "max_ticks", e.maxTicks)
	if e.hooks.OnReset != nil {
		e.hooks.OnReset(ctx, &domain.ResetEvent{
			EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventReset},
			Word:      word,
			Limit:     e.maxTicks,
		})
	}
}

// Tick expands every configuration of the frontier by every matching transition and
// replaces the frontier with the deduplicated result.
func (e *Engine) Tick(ctx context.Context) {
	if e.status == StatusIdle {
		e.status = StatusExploring
	}

	items := e.frontier.Items()
	successors := e.expand(items)

	next := NewConfigurationSet()
	for _, batch := range successors {
		for _, c := range batch {
			next.Add(c)
		}
	}
	e.frontier = next
	e.ticks++

	e.logger.Debug("tick", "tick", e.ticks, "frontier", next.Len())
	if e.hooks.OnTick != nil {
		e.hooks.OnTick(ctx, &domain.TickEvent{
			EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventTick},
			Tick:      e.ticks,
			Frontier:  next.Snapshots(),
		})
	}
}

// expand computes the successors of each configuration. The result is indexed like items,
// so merging it in order yields the same frontier whether or not expansion ran in parallel.
func (e *Engine) expand(items []*domain.Configuration) [][]*domain.Configuration {
	out := make([][]*domain.Configuration, len(items))
	if e.parallelism < 2 || len(items) < 2 {
		for i, c := range items {
			out[i] = e.successors(c)
		}
		return out
	}

	var g errgroup.Group
	g.SetLimit(e.parallelism)
	for i, c := range items {
		g.Go(func() error {
			out[i] = e.successors(c)
			return nil
		})
	}
	_ = g.Wait()
	return out
}

func (e *Engine) successors(c *domain.Configuration) []*domain.Configuration {
	var out []*domain.Configuration
	for _, t := range e.byState[c.State] {
		if Matches(c, t) {
			out = append(out, Apply(c, t))
		}
	}
	return out
}

// Accepting returns the first accepting configuration of the frontier, or nil.
func (e *Engine) Accepting() *domain.Configuration {
	return e.checker.First(e.frontier)
}

// AcceptsWord evaluates word from scratch.
//
// It returns an accepted verdict with the derivation as soon as the frontier contains an
// accepting configuration, a rejected verdict when the frontier becomes empty, and a
// *domain.TickLimitError when the budget is spent first. Cancelling ctx stops the search
// between ticks and returns ctx.Err().
func (e *Engine) AcceptsWord(ctx context.Context, word domain.Word) (*domain.Verdict, error) {
	started := time.Now()
	e.Reset(ctx, word)

	for {
		if accepted := e.Accepting(); accepted != nil {
			e.status = StatusAccepted
			verdict := &domain.Verdict{
				Outcome:    domain.OutcomeAccepted,
				Ticks:      e.ticks,
				Limit:      e.limit(),
				Derivation: accepted.Derivation(),
			}
			e.finish(ctx, word, verdict.Outcome, started)
			return verdict, nil
		}

		if e.frontier.Len() == 0 {
			e.status = StatusRejected
			e.finish(ctx, word, domain.OutcomeRejected, started)
			return &domain.Verdict{Outcome: domain.OutcomeRejected, Ticks: e.ticks, Limit: e.limit()}, nil
		}

		if e.maxTicks > 0 && e.ticks >= e.maxTicks {
			e.status = StatusTickLimitExceeded
			e.logger.Warn("tick limit reached", "ticks", e.ticks, "limit", e.maxTicks, "frontier", e.frontier.Len())
			e.finish(ctx, word, domain.OutcomeTickLimitExceeded, started)
			return nil, &domain.TickLimitError{Ticks: e.ticks, Limit: e.maxTicks}
		}

		if err := ctx.Err(); err != nil {
			e.status = StatusIdle
			return nil, err
		}
		e.Tick(ctx)
	}
}

func (e *Engine) limit() int {
	if e.maxTicks > 0 {
		return e.maxTicks
	}
	return 0
}

func (e *Engine) finish(ctx context.Context, word domain.Word, outcome domain.Outcome, started time.Time) {
	e.logger.Debug("evaluation finished", "outcome", outcome, "ticks", e.ticks)
	if e.hooks.OnVerdict != nil {
		e.hooks.OnVerdict(ctx, &domain.VerdictEvent{
			EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventVerdict},
			Word:      word,
			Outcome:   outcome,
			Ticks:     e.ticks,
			Duration:  time.Since(started),
		})
	}
}
