package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/magazine/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunVerdictCacheContract runs a suite of tests to verify that a VerdictCache implementation
// adheres to the defined interface contract.
func RunVerdictCacheContract(t *testing.T, cache VerdictCache) {
	ctx := context.Background()
	prefix := "contract-" + time.Now().Format("20060102150405") + "-"

	t.Run("Put and Get", func(t *testing.T) {
		key := prefix + "accepted"
		verdict := &domain.Verdict{
			Outcome: domain.OutcomeAccepted,
			Ticks:   2,
			Limit:   10,
			Derivation: []domain.Snapshot{
				{State: "q0", Word: domain.NewWord("a"), Stack: domain.NewStack("Z")},
				{State: "q1", Word: domain.Word{}, Stack: domain.NewStack("Z", "A")},
				{State: "q1", Word: domain.Word{}, Stack: domain.Stack{}},
			},
		}

		require.NoError(t, cache.Put(ctx, key, verdict), "Put should not return error")

		loaded, err := cache.Get(ctx, key)
		require.NoError(t, err, "Get should not return error")
		assert.Equal(t, verdict.Outcome, loaded.Outcome)
		assert.Equal(t, verdict.Ticks, loaded.Ticks)
		assert.Equal(t, verdict.Limit, loaded.Limit)
		require.Len(t, loaded.Derivation, 3)
		assert.Equal(t, verdict.Derivation[1].Stack, loaded.Derivation[1].Stack)
	})

	t.Run("Get Missing", func(t *testing.T) {
		_, err := cache.Get(ctx, prefix+"missing")
		assert.ErrorIs(t, err, domain.ErrCacheMiss)
	})

	t.Run("Overwrite", func(t *testing.T) {
		key := prefix + "overwrite"
		require.NoError(t, cache.Put(ctx, key, &domain.Verdict{Outcome: domain.OutcomeRejected, Ticks: 1}))
		require.NoError(t, cache.Put(ctx, key, &domain.Verdict{Outcome: domain.OutcomeTickLimitExceeded, Ticks: 5, Limit: 5}))

		loaded, err := cache.Get(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, domain.OutcomeTickLimitExceeded, loaded.Outcome)
		assert.ErrorIs(t, loaded.Err(), domain.ErrTickLimitExceeded)
	})

	t.Run("Delete", func(t *testing.T) {
		key := prefix + "delete"
		require.NoError(t, cache.Put(ctx, key, &domain.Verdict{Outcome: domain.OutcomeRejected}))

		require.NoError(t, cache.Delete(ctx, key), "Delete should not return error")

		_, err := cache.Get(ctx, key)
		assert.ErrorIs(t, err, domain.ErrCacheMiss, "Get after Delete should return ErrCacheMiss")

		assert.NoError(t, cache.Delete(ctx, key), "Deleting twice is not an error")
	})
}
