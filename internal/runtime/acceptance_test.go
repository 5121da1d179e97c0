package runtime_test

import (
	"testing"

	"github.com/aretw0/magazine/internal/runtime"
	"github.com/aretw0/magazine/internal/testutils"
	"github.com/aretw0/magazine/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestAcceptance_EmptyStack(t *testing.T) {
	def := testutils.BalancedDefinition()
	// Accepted states are irrelevant in empty-stack mode.
	def.AcceptedStates = []domain.State{"q1"}
	checker := runtime.NewAcceptanceChecker(def)

	tests := []struct {
		name string
		c    *domain.Configuration
		want bool
	}{
		{"consumed and empty", domain.NewConfiguration("q0", nil, nil), true},
		{"consumed, stack left", domain.NewConfiguration("q1", nil, domain.NewStack("Z")), false},
		{"empty stack, word left", domain.NewConfiguration("q0", domain.NewWord("a"), nil), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, checker.IsAccepting(tt.c))
			assert.Equal(t, tt.want, runtime.IsAccepting(tt.c, def))
		})
	}
}

func TestAcceptance_FinalState(t *testing.T) {
	def := testutils.WordDefinition("aa")
	checker := runtime.NewAcceptanceChecker(def)

	tests := []struct {
		name string
		c    *domain.Configuration
		want bool
	}{
		{"final state, stack left", domain.NewConfiguration("qf", nil, domain.NewStack("Z")), true},
		{"final state, empty stack", domain.NewConfiguration("qf", nil, nil), true},
		{"not final", domain.NewConfiguration("q0", nil, nil), false},
		{"word left", domain.NewConfiguration("qf", domain.NewWord("aa"), nil), false},
		{"undeclared state", domain.NewConfiguration("zz", nil, nil), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, checker.IsAccepting(tt.c))
			assert.Equal(t, tt.want, runtime.IsAccepting(tt.c, def))
		})
	}
}

func TestAcceptance_First(t *testing.T) {
	checker := runtime.NewAcceptanceChecker(testutils.WordDefinition("aa"))
	first := domain.NewConfiguration("qf", nil, domain.NewStack("Z"))
	set := runtime.NewConfigurationSet(
		domain.NewConfiguration("q0", nil, nil),
		first,
		domain.NewConfiguration("qf", nil, nil),
	)

	assert.Same(t, first, checker.First(set))
	assert.Nil(t, checker.First(runtime.NewConfigurationSet()))
}
