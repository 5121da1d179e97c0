package dsl_test

import (
	"context"
	"testing"

	"github.com/aretw0/magazine"
	"github.com/aretw0/magazine/pkg/domain"
	"github.com/aretw0/magazine/pkg/dsl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func balanced() *dsl.Builder {
	return dsl.New("balanced").
		Start("q0", "Z").
		AcceptByEmptyStack().
		From("q0").Read("a").Pop("Z").Push("Z", "A").To("q0").
		From("q0").Read("a").Pop("A").Push("A", "A").To("q0").
		From("q0").Read("b").Pop("A").To("q1").
		From("q1").Read("b").Pop("A").To("q1").
		From("q1").Pop("Z").To("q1").
		From("q0").Pop("Z").To("q0")
}

func TestBuilder_CollectsSymbols(t *testing.T) {
	def, err := balanced().Build()
	require.NoError(t, err)

	assert.Equal(t, "balanced", def.Name)
	assert.Equal(t, []domain.State{"q0", "q1"}, def.States)
	assert.Equal(t, []domain.Symbol{"a", "b"}, def.AlphabetSymbols)
	assert.Equal(t, []domain.StackSymbol{"Z", "A"}, def.StackSymbols)
	assert.True(t, def.AcceptThroughEmptyStack)
	assert.Empty(t, def.AcceptedStates)
	require.Len(t, def.Transitions, 6)
	assert.True(t, def.Transitions[4].InputSymbol.IsEpsilon())
}

func TestBuilder_EvaluatesWords(t *testing.T) {
	def, err := balanced().Build()
	require.NoError(t, err)

	engine, err := magazine.NewFromDefinition(def)
	require.NoError(t, err)

	ctx := context.Background()
	tests := []struct {
		word     string
		accepted bool
	}{
		{"", true},
		{"ab", true},
		{"aabb", true},
		{"aab", false},
		{"ba", false},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			verdict, err := engine.AcceptsString(ctx, tt.word)
			require.NoError(t, err)
			assert.Equal(t, tt.accepted, verdict.Accepted())
		})
	}
}

func TestBuilder_FinalState(t *testing.T) {
	def, err := dsl.New("single").
		States("s", "f", "dead").
		Alphabet("x", "y").
		Start("s", "Z").
		From("s").Read("x").Pop("Z").Push("Z").To("f").
		Accept("f").
		Build()
	require.NoError(t, err)

	assert.Equal(t, []domain.State{"s", "f", "dead"}, def.States)
	assert.Equal(t, []domain.Symbol{"x", "y"}, def.AlphabetSymbols)
	assert.Equal(t, []domain.State{"f"}, def.AcceptedStates)
	assert.False(t, def.AcceptThroughEmptyStack)
}

func TestBuilder_MissingStart(t *testing.T) {
	_, err := dsl.New("broken").
		From("q0").Read("a").To("q0").
		Build()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidDefinition)
}

func TestBuilder_Loader(t *testing.T) {
	loader, err := balanced().Loader()
	require.NoError(t, err)

	ids, err := loader.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"balanced"}, ids)
}

func TestRuleBuilder_Rule(t *testing.T) {
	rule := dsl.New("x").From("p").Read("a").Pop("A", "B").Push("C").Rule()
	assert.Equal(t, domain.State("p"), rule.FromState)
	assert.Equal(t, "(p, a, AB) -> (, C)", rule.String())
}
