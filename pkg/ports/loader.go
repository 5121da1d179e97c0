package ports

import (
	"context"

	"github.com/aretw0/magazine/pkg/domain"
)

// DefinitionLoader defines how automaton definitions are retrieved.
// This allows the storage layer (Loam, FS, Memory) to be decoupled.
type DefinitionLoader interface {
	// Load returns the validated definition stored under id.
	// It returns an error wrapping domain.ErrDefinitionNotFound if id is unknown.
	Load(ctx context.Context, id string) (*domain.Definition, error)

	// List returns the IDs of all available definitions.
	List(ctx context.Context) ([]string, error)
}

// Watchable defines an interface for loaders that can notify about backend changes.
// This is typically used for hot-reload.
type Watchable interface {
	// Watch returns a channel that receives the ID of every changed definition.
	// The channel is closed when ctx is done.
	Watch(ctx context.Context) (<-chan string, error)
}
