package loam

import (
	"context"
	"testing"

	"github.com/aretw0/loam"

	"github.com/aretw0/magazine/internal/testutils"
	"github.com/aretw0/magazine/pkg/domain"
	"github.com/aretw0/magazine/pkg/ports/tests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const balancedMarkdown = `---
states: [q0, q1]
alphabet: [a, b]
stack_alphabet: [Z, A]
initial_state: q0
initial_stack_symbol: Z
acceptance: empty_stack
transitions:
  - q0 a Z q0 ZA
  - q0 a A q0 AA
  - q0 b A q1 -
  - q1 b A q1 -
  - q1 - Z q1 -
  - q0 - Z q0 -
---
# Balanced

Accepts a^n b^n by emptying the stack.
`

const wordsJSON = `{
  "states": ["q0", "qf"],
  "alphabet": ["aa"],
  "stack_alphabet": ["Z"],
  "initial_state": "q0",
  "initial_stack_symbol": "Z",
  "accepted_states": ["qf"],
  "transitions": [
    {"from": "q0", "pop": "Z", "to": "qf", "push": "Z"},
    {"from": "q0", "input": "aa", "pop": ["Z"], "to": "qf", "push": ["Z"]}
  ]
}`

func TestLoader_Contract(t *testing.T) {
	tmpDir, repo := testutils.SetupTestRepo(t)
	testutils.WriteFiles(t, tmpDir, map[string]string{
		"balanced.md": balancedMarkdown,
		"words.json":  wordsJSON,
	})

	loader := New(loam.NewTypedRepository[DefinitionMetadata](repo))

	tests.DefinitionLoaderContractTest(t, loader, map[string]*domain.Definition{
		"balanced": testutils.BalancedDefinition(),
		"words":    testutils.WordDefinition("aa"),
	})
}

func TestLoader_LoadSetsName(t *testing.T) {
	tmpDir, repo := testutils.SetupTestRepo(t)
	testutils.WriteFiles(t, tmpDir, map[string]string{"balanced.md": balancedMarkdown})

	loader := New(loam.NewTypedRepository[DefinitionMetadata](repo))
	def, err := loader.Load(context.Background(), "balanced")
	require.NoError(t, err)

	assert.Equal(t, "balanced", def.Name)
	assert.True(t, def.AcceptThroughEmptyStack)
}

func TestLoader_InvalidDefinition(t *testing.T) {
	tmpDir, repo := testutils.SetupTestRepo(t)
	testutils.WriteFiles(t, tmpDir, map[string]string{"broken.md": `---
states: [q0]
stack_alphabet: [Z]
initial_state: q9
initial_stack_symbol: Z
---
`})

	loader := New(loam.NewTypedRepository[DefinitionMetadata](repo))
	_, err := loader.Load(context.Background(), "broken")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidDefinition)
}

func TestLoader_List_DetectsCollisions(t *testing.T) {
	tmpDir, repo := testutils.SetupTestRepo(t)
	testutils.WriteFiles(t, tmpDir, map[string]string{
		"words.md":   "---\nid: words\n---\n",
		"words.json": wordsJSON,
	})

	loader := New(loam.NewTypedRepository[DefinitionMetadata](repo))
	_, err := loader.List(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "collision detected")
}
