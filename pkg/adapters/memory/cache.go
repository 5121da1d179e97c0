package memory

import (
	"context"
	"sync"

	"github.com/aretw0/magazine/pkg/domain"
)

// Cache implements ports.VerdictCache in memory.
// Safe for concurrent use.
type Cache struct {
	data map[string]*domain.Verdict
	mu   sync.RWMutex
}

// NewCache creates a new in-memory verdict cache.
func NewCache() *Cache {
	return &Cache{
		data: make(map[string]*domain.Verdict),
	}
}

// Put stores a copy of the verdict.
func (c *Cache) Put(ctx context.Context, key string, verdict *domain.Verdict) error {
	copied := copyVerdict(verdict)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = copied
	return nil
}

// Get returns a copy so callers cannot mutate the cached value.
func (c *Cache) Get(ctx context.Context, key string) (*domain.Verdict, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	verdict, ok := c.data[key]
	if !ok {
		return nil, domain.ErrCacheMiss
	}
	return copyVerdict(verdict), nil
}

// Delete removes the verdict.
func (c *Cache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return nil
}

// Len returns the number of cached verdicts.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.data)
}

func copyVerdict(v *domain.Verdict) *domain.Verdict {
	out := *v
	if v.Derivation != nil {
		out.Derivation = append([]domain.Snapshot(nil), v.Derivation...)
	}
	return &out
}
