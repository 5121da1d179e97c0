package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/aretw0/magazine/internal/compiler"
	"github.com/aretw0/magazine/pkg/domain"
)

// Loader implements ports.DefinitionLoader using an in-memory map.
// Safe for concurrent use.
type Loader struct {
	mu   sync.RWMutex
	defs map[string]*domain.Definition
}

// NewLoader creates a loader holding defs, keyed by their Name.
func NewLoader(defs ...*domain.Definition) (*Loader, error) {
	l := &Loader{defs: make(map[string]*domain.Definition)}
	for _, def := range defs {
		if def.Name == "" {
			return nil, fmt.Errorf("definition missing name")
		}
		if err := l.Add(def.Name, def); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// NewFromSources parses raw sources keyed by file name (the extension selects the format).
// This improves DX for tests.
func NewFromSources(sources map[string]string) (*Loader, error) {
	l := &Loader{defs: make(map[string]*domain.Definition)}
	for name, src := range sources {
		def, err := compiler.Parse(name, []byte(src))
		if err != nil {
			return nil, err
		}
		l.defs[def.Name] = def
	}
	return l, nil
}

// Add validates def and stores it under id, replacing any previous definition.
func (l *Loader) Add(id string, def *domain.Definition) error {
	if err := def.Validate(); err != nil {
		return fmt.Errorf("definition %s: %w", id, err)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.defs[id] = def
	return nil
}

// Load retrieves a definition by ID.
func (l *Loader) Load(ctx context.Context, id string) (*domain.Definition, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	def, ok := l.defs[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrDefinitionNotFound, id)
	}
	return def, nil
}

// List returns all available definition IDs.
func (l *Loader) List(ctx context.Context) ([]string, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	keys := make([]string, 0, len(l.defs))
	for k := range l.defs {
		keys = append(keys, k)
	}
	sort.Strings(keys) // Deterministic order
	return keys, nil
}
