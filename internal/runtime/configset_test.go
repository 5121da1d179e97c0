package runtime_test

import (
	"testing"

	"github.com/aretw0/magazine/internal/runtime"
	"github.com/aretw0/magazine/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestConfigurationSet_Dedup(t *testing.T) {
	root := domain.NewConfiguration("q0", domain.NewWord("a"), domain.NewStack("Z"))
	viaA := root.Derive("q1", nil, domain.NewStack("Z"))
	viaB := root.Derive("q2", nil, domain.NewStack("Z")).Derive("q1", nil, domain.NewStack("Z"))

	set := runtime.NewConfigurationSet(root)
	assert.True(t, set.Add(viaA))
	assert.False(t, set.Add(viaB), "same triple with a different history is a duplicate")
	assert.Equal(t, 2, set.Len())

	// The first inserted representative is kept.
	assert.Same(t, viaA, set.Items()[1])
	assert.True(t, set.Has(domain.NewConfiguration("q1", domain.Word{}, domain.NewStack("Z"))))
}

func TestConfigurationSet_KeysDoNotCollide(t *testing.T) {
	set := runtime.NewConfigurationSet(
		domain.NewConfiguration("q", domain.NewWord("ab"), nil),
		domain.NewConfiguration("q", domain.NewWord("a", "b"), nil),
		domain.NewConfiguration("q", nil, domain.NewStack("ab")),
		domain.NewConfiguration("q", nil, domain.NewStack("a", "b")),
	)
	assert.Equal(t, 4, set.Len())
}

func TestConfigurationSet_Snapshots(t *testing.T) {
	set := runtime.NewConfigurationSet(domain.NewConfiguration("q0", nil, nil))
	snaps := set.Snapshots()

	assert.Len(t, snaps, 1)
	assert.NotNil(t, snaps[0].Word)
	assert.NotNil(t, snaps[0].Stack)
}
