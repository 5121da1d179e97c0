package ports

import (
	"context"

	"github.com/aretw0/magazine/pkg/domain"
)

// VerdictCache stores finished verdicts keyed by domain.VerdictKey.
// Only definite outcomes and tick limit verdicts are stored; definitions never are.
type VerdictCache interface {
	// Get returns the verdict stored under key.
	// Returns domain.ErrCacheMiss if nothing is stored.
	Get(ctx context.Context, key string) (*domain.Verdict, error)

	// Put stores verdict under key, replacing any previous value.
	Put(ctx context.Context, key string, verdict *domain.Verdict) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
