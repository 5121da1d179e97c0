package tests

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/magazine/pkg/domain"
	"github.com/aretw0/magazine/pkg/ports"
)

// DefinitionLoaderContractTest is a reusable test suite that verifies if an adapter complies
// with ports.DefinitionLoader. expected maps every ID the loader holds to its definition.
// Names are not compared, only the automaton digests.
func DefinitionLoaderContractTest(t *testing.T, loader ports.DefinitionLoader, expected map[string]*domain.Definition) {
	t.Helper()
	ctx := context.Background()

	t.Run("Load_Success", func(t *testing.T) {
		for id, want := range expected {
			def, err := loader.Load(ctx, id)
			if err != nil {
				t.Fatalf("unexpected error loading definition %s: %v", id, err)
			}
			if def.Digest() != want.Digest() {
				t.Errorf("definition mismatch for %s.\ngot  %+v\nwant %+v", id, def, want)
			}
			if err := def.Validate(); err != nil {
				t.Errorf("loaded definition %s is invalid: %v", id, err)
			}
		}
	})

	t.Run("Load_NotFound", func(t *testing.T) {
		_, err := loader.Load(ctx, "non-existent-definition")
		if !errors.Is(err, domain.ErrDefinitionNotFound) {
			t.Errorf("expected ErrDefinitionNotFound, got %v", err)
		}
	})

	t.Run("List", func(t *testing.T) {
		ids, err := loader.List(ctx)
		if err != nil {
			t.Fatalf("unexpected error listing definitions: %v", err)
		}

		if len(ids) != len(expected) {
			t.Errorf("expected %d definitions, got %d", len(expected), len(ids))
		}

		lookup := make(map[string]bool)
		for _, id := range ids {
			lookup[id] = true
		}
		for id := range expected {
			if !lookup[id] {
				t.Errorf("definition %s missing from list", id)
			}
		}
	})
}
