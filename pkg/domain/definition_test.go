package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDefinition() *Definition {
	return &Definition{
		Name:               "sample",
		States:             []State{"Q0", "Q1"},
		AlphabetSymbols:    []Symbol{"a"},
		StackSymbols:       []StackSymbol{"Z"},
		InitialState:       "Q0",
		InitialStackSymbol: "Z",
		AcceptedStates:     []State{"Q1"},
		Transitions: []Transition{
			{FromState: "Q0", InputSymbol: Read("a"), ToState: "Q1"},
		},
	}
}

func TestDefinition_Validate(t *testing.T) {
	require.NoError(t, validDefinition().Validate())

	def := validDefinition()
	def.InitialState = "Q9"
	def.InitialStackSymbol = "X"
	def.AcceptedStates = append(def.AcceptedStates, "Q7")

	err := def.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidDefinition))
	assert.Len(t, ValidationErrors(err), 3)

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "initial_state", vErr.Key)
}

func TestDefinition_DigestIgnoresName(t *testing.T) {
	a := validDefinition()
	b := validDefinition()
	b.Name = "renamed"
	assert.Equal(t, a.Digest(), b.Digest())

	b.AcceptThroughEmptyStack = true
	assert.NotEqual(t, a.Digest(), b.Digest())
}

func TestVerdictKey(t *testing.T) {
	d := validDefinition().Digest()
	assert.Equal(t, VerdictKey(d, NewWord("a"), 10), VerdictKey(d, NewWord("a"), 10))
	assert.NotEqual(t, VerdictKey(d, NewWord("a"), 10), VerdictKey(d, NewWord("a"), 11))
	assert.NotEqual(t, VerdictKey(d, NewWord("aa"), 10), VerdictKey(d, NewWord("a", "a"), 10))
}

func TestTickLimitError(t *testing.T) {
	err := error(&TickLimitError{Ticks: 5, Limit: 5})
	assert.True(t, errors.Is(err, ErrTickLimitExceeded))

	var tle *TickLimitError
	require.True(t, errors.As(err, &tle))
	v := tle.Verdict()
	assert.Equal(t, OutcomeTickLimitExceeded, v.Outcome)
	assert.False(t, v.Accepted())
	assert.Equal(t, err.Error(), v.Err().Error())
}

func TestDefinition_DigestNormalizesEmptySlices(t *testing.T) {
	a := validDefinition()
	b := validDefinition()
	b.AcceptedStates = []State{"Q1"}
	b.Transitions[0].InputStackSymbols = []StackSymbol{}
	b.Transitions[0].OutputStackSymbols = []StackSymbol{}

	assert.Equal(t, a.Digest(), b.Digest())
	assert.Empty(t, a.Transitions[0].InputStackSymbols, "digest must not modify the definition")
}
