package magazine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/aretw0/magazine/internal/compiler"
	"github.com/aretw0/magazine/internal/runtime"
	"github.com/aretw0/magazine/pkg/adapters/file"
	loamAdapter "github.com/aretw0/magazine/pkg/adapters/loam"
	"github.com/aretw0/magazine/pkg/adapters/memory"
	"github.com/aretw0/magazine/pkg/domain"
	"github.com/aretw0/magazine/pkg/ports"
)

// DefaultMaxTicks is the tick budget used when WithMaxTicks is not given.
const DefaultMaxTicks = runtime.DefaultMaxTicks

// Engine is the high-level entry point for the magazine library.
// It wraps the internal runtime and provides a simplified API for consumers.
//
// Engine is safe for concurrent use: every evaluation runs on its own runtime engine.
type Engine struct {
	mu  sync.RWMutex
	def *domain.Definition

	loader       ports.DefinitionLoader
	cache        ports.VerdictCache
	definitionID string
	maxTicks     int
	parallelism  int
	hooks        domain.LifecycleHooks
	logger       *slog.Logger
	Name         string
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = e.hooks.Merge(hooks)
	}
}

// WithLoader injects a custom DefinitionLoader, bypassing the default path-based loaders.
func WithLoader(l ports.DefinitionLoader) Option {
	return func(e *Engine) {
		e.loader = l
	}
}

// WithDefinitionID selects which definition of the loader to evaluate.
// It is required when the loader holds more than one definition.
func WithDefinitionID(id string) Option {
	return func(e *Engine) {
		e.definitionID = id
	}
}

// WithCache stores verdicts so repeated evaluations are not recomputed.
func WithCache(c ports.VerdictCache) Option {
	return func(e *Engine) {
		e.cache = c
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithMaxTicks sets the default tick budget. Non-positive values mean unbounded.
func WithMaxTicks(n int) Option {
	return func(e *Engine) {
		e.maxTicks = n
	}
}

// WithParallelism expands up to n configurations concurrently within a tick.
func WithParallelism(n int) Option {
	return func(e *Engine) {
		e.parallelism = n
	}
}

// New initializes a new Engine from path.
// A directory is opened as a Loam repository (Markdown, JSON or YAML documents); a single
// file is parsed by extension (.yaml, .yml, .json, anything else as text).
// If WithLoader is provided, path can be empty and is used as a label only.
func New(path string, opts ...Option) (*Engine, error) {
	eng := newEngine(opts...)

	if eng.loader == nil {
		if path == "" {
			return nil, fmt.Errorf("path is required when no custom loader is provided")
		}
		absPath, err := filepath.Abs(path)
		if err != nil {
			return nil, fmt.Errorf("invalid path: %w", err)
		}
		info, err := os.Stat(absPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", path, err)
		}

		if info.IsDir() {
			eng.loader, err = loamAdapter.Open(absPath)
			if err != nil {
				return nil, err
			}
		} else {
			eng.loader = file.NewLoader(absPath)
			if eng.definitionID == "" {
				eng.definitionID = strings.TrimSuffix(filepath.Base(absPath), filepath.Ext(absPath))
			}
		}
	}

	if err := eng.Reload(context.Background()); err != nil {
		return nil, err
	}
	return eng, nil
}

// NewFromDefinition creates an Engine for an in-memory definition.
func NewFromDefinition(def *domain.Definition, opts ...Option) (*Engine, error) {
	if err := def.Validate(); err != nil {
		return nil, err
	}
	name := def.Name
	if name == "" {
		name = "automaton"
	}
	loader, err := memory.NewLoader()
	if err != nil {
		return nil, err
	}
	if err := loader.Add(name, def); err != nil {
		return nil, err
	}

	eng := newEngine(append([]Option{WithLoader(loader), WithDefinitionID(name)}, opts...)...)
	if err := eng.Reload(context.Background()); err != nil {
		return nil, err
	}
	return eng, nil
}

func newEngine(opts ...Option) *Engine {
	eng := &Engine{maxTicks: DefaultMaxTicks}
	for _, opt := range opts {
		opt(eng)
	}
	// Ensure logger is initialized (so we don't pass nil to runtime)
	if eng.logger == nil {
		eng.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return eng
}

// Reload fetches the selected definition from the loader again.
// On failure the previous definition stays in use.
func (e *Engine) Reload(ctx context.Context) error {
	id, err := e.resolveID(ctx)
	if err != nil {
		return err
	}
	def, err := e.loader.Load(ctx, id)
	if err != nil {
		return err
	}

	e.mu.Lock()
	e.def = def
	e.definitionID = id
	e.Name = def.Name
	e.mu.Unlock()

	e.logger.Debug("definition loaded", "definition", id, "states", len(def.States), "transitions", len(def.Transitions))
	return nil
}

func (e *Engine) resolveID(ctx context.Context) (string, error) {
	if e.definitionID != "" {
		return e.definitionID, nil
	}
	ids, err := e.loader.List(ctx)
	if err != nil {
		return "", err
	}
	switch len(ids) {
	case 0:
		return "", fmt.Errorf("%w: the loader holds no definitions", domain.ErrDefinitionNotFound)
	case 1:
		return ids[0], nil
	default:
		return "", fmt.Errorf("found %d definitions (%s), select one with WithDefinitionID", len(ids), strings.Join(ids, ", "))
	}
}

// Definition returns the automaton currently in use.
func (e *Engine) Definition() *domain.Definition {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.def
}

// MaxTicks returns the default tick budget.
func (e *Engine) MaxTicks() int {
	return e.maxTicks
}

// Loader returns the underlying DefinitionLoader used by the engine.
func (e *Engine) Loader() ports.DefinitionLoader {
	return e.loader
}

// AcceptsWord reports whether the automaton accepts word within the default budget.
//
// A rejected verdict is returned with a nil error when every branch dies out. Running out of
// ticks is not a rejection: it returns a nil verdict and an error matching
// domain.ErrTickLimitExceeded.
func (e *Engine) AcceptsWord(ctx context.Context, word domain.Word) (*domain.Verdict, error) {
	return e.AcceptsWordWithin(ctx, word, e.maxTicks)
}

// AcceptsWordWithin is AcceptsWord with an explicit budget (non-positive means unbounded).
func (e *Engine) AcceptsWordWithin(ctx context.Context, word domain.Word, maxTicks int) (*domain.Verdict, error) {
	def := e.Definition()
	if maxTicks < 0 {
		maxTicks = 0
	}

	var key string
	if e.cache != nil {
		key = domain.VerdictKey(def.Digest(), word, maxTicks)
		cached, err := e.cache.Get(ctx, key)
		switch {
		case err == nil:
			e.logger.Debug("verdict served from cache", "outcome", cached.Outcome)
			if e.hooks.OnVerdict != nil {
				e.hooks.OnVerdict(ctx, &domain.VerdictEvent{
					EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventVerdict},
					Word:      word,
					Outcome:   cached.Outcome,
					Ticks:     cached.Ticks,
					Cached:    true,
				})
			}
			if limitErr := cached.Err(); limitErr != nil {
				return nil, limitErr
			}
			return cached, nil
		case !errors.Is(err, domain.ErrCacheMiss):
			e.logger.Warn("verdict cache unavailable", "error", err)
		}
	}

	rt := runtime.NewEngine(def,
		runtime.WithMaxTicks(maxTicks),
		runtime.WithParallelism(e.parallelism),
		runtime.WithLifecycleHooks(e.hooks),
		runtime.WithLogger(e.logger.With("definition", def.Name)),
	)
	verdict, err := rt.AcceptsWord(ctx, word)

	var limitErr *domain.TickLimitError
	switch {
	case err == nil:
		e.store(ctx, key, verdict)
	case errors.As(err, &limitErr):
		e.store(ctx, key, limitErr.Verdict())
	}
	return verdict, err
}

func (e *Engine) store(ctx context.Context, key string, verdict *domain.Verdict) {
	if e.cache == nil {
		return
	}
	if err := e.cache.Put(ctx, key, verdict); err != nil {
		e.logger.Warn("failed to cache verdict", "error", err)
	}
}

// AcceptsString tokenizes s with ParseWord and evaluates it.
func (e *Engine) AcceptsString(ctx context.Context, s string) (*domain.Verdict, error) {
	return e.AcceptsWord(ctx, ParseWord(s))
}

// ParseWord splits s into input symbols: on whitespace when s contains any, otherwise one
// symbol per character.
func ParseWord(s string) domain.Word {
	return compiler.ParseWord(s)
}

// Watch returns a channel that receives the ID of every changed definition.
// Returns error if the loader does not support watching.
func (e *Engine) Watch(ctx context.Context) (<-chan string, error) {
	if w, ok := e.loader.(ports.Watchable); ok {
		return w.Watch(ctx)
	}
	return nil, fmt.Errorf("current loader does not support watching")
}
