package validator

import (
	"testing"

	"github.com/aretw0/magazine/internal/testutils"
	"github.com/aretw0/magazine/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDefinition_Clean(t *testing.T) {
	report := ValidateDefinition(testutils.BalancedDefinition())

	assert.Empty(t, report.Issues)
	assert.False(t, report.HasErrors())
	assert.NoError(t, report.Err())
	assert.Equal(t, []domain.State{"q0", "q1"}, report.Reachable)
}

func TestValidateDefinition_Unreachable(t *testing.T) {
	def := testutils.WordDefinition("aa")
	def.States = append(def.States, "island")

	report := ValidateDefinition(def)
	require.Len(t, report.Issues, 1)
	assert.Equal(t, SeverityWarning, report.Issues[0].Severity)
	assert.Contains(t, report.Issues[0].Message, `"island"`)
	assert.NoError(t, report.Err())
	assert.Equal(t, []domain.State{"q0", "qf"}, report.Reachable)
}

func TestValidateDefinition_UndeclaredSymbols(t *testing.T) {
	def := testutils.BalancedDefinition()
	def.Transitions = append(def.Transitions, domain.Transition{
		FromState:          "q1",
		InputSymbol:        domain.Read("c"),
		InputStackSymbols:  []domain.StackSymbol{"Y"},
		ToState:            "ghost",
		OutputStackSymbols: []domain.StackSymbol{"A"},
	})

	report := ValidateDefinition(def)
	assert.True(t, report.HasErrors())

	var msgs []string
	for _, i := range report.Issues {
		msgs = append(msgs, i.Message)
	}
	require.Len(t, msgs, 3)
	assert.Contains(t, msgs[0], `undeclared state "ghost"`)
	assert.Contains(t, msgs[1], `symbol "c"`)
	assert.Contains(t, msgs[2], `stack symbol "Y"`)

	err := report.Err()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidDefinition)
}

func TestValidateDefinition_AcceptanceWarnings(t *testing.T) {
	def := testutils.WordDefinition("aa")
	def.AcceptedStates = nil
	report := ValidateDefinition(def)
	require.Len(t, report.Issues, 1)
	assert.Contains(t, report.Issues[0].Message, "accepts no word")

	def = testutils.BalancedDefinition()
	def.AcceptedStates = []domain.State{"q1"}
	report = ValidateDefinition(def)
	require.Len(t, report.Issues, 1)
	assert.Contains(t, report.Issues[0].Message, "ignored")
}

func TestValidateDefinition_InvalidInitialState(t *testing.T) {
	def := testutils.BalancedDefinition()
	def.InitialState = "nowhere"

	report := ValidateDefinition(def)
	assert.True(t, report.HasErrors())
	// Nothing is reachable without a valid initial state.
	assert.Empty(t, report.Reachable)
}

func TestCheckWord(t *testing.T) {
	def := testutils.BalancedDefinition()
	assert.Empty(t, CheckWord(def, domain.NewWord("a", "b")))
	assert.Equal(t, []domain.Symbol{"c"}, CheckWord(def, domain.NewWord("a", "c")))
}
