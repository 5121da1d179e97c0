package runtime_test

import (
	"testing"

	"github.com/aretw0/magazine/internal/runtime"
	"github.com/aretw0/magazine/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatches(t *testing.T) {
	base := domain.NewConfiguration("q0", domain.NewWord("a", "b"), domain.NewStack("Z", "V"))

	tests := []struct {
		name string
		tr   domain.Transition
		want bool
	}{
		{"top matches", domain.Transition{FromState: "q0", InputSymbol: domain.Read("a"), InputStackSymbols: domain.NewStack("V")}, true},
		{"whole stack matches", domain.Transition{FromState: "q0", InputSymbol: domain.Read("a"), InputStackSymbols: domain.NewStack("Z", "V")}, true},
		{"longer than stack", domain.Transition{FromState: "q0", InputSymbol: domain.Read("a"), InputStackSymbols: domain.NewStack("Z", "V", "V")}, false},
		{"not on top", domain.Transition{FromState: "q0", InputSymbol: domain.Read("a"), InputStackSymbols: domain.NewStack("Z")}, false},
		{"wrong order", domain.Transition{FromState: "q0", InputSymbol: domain.Read("a"), InputStackSymbols: domain.NewStack("V", "Z")}, false},
		{"empty stack input always matches", domain.Transition{FromState: "q0", InputSymbol: domain.Read("a")}, true},
		{"wrong state", domain.Transition{FromState: "q1", InputSymbol: domain.Read("a")}, false},
		{"wrong symbol", domain.Transition{FromState: "q0", InputSymbol: domain.Read("b")}, false},
		{"epsilon", domain.Transition{FromState: "q0", InputSymbol: domain.Epsilon(), InputStackSymbols: domain.NewStack("V")}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, runtime.Matches(base, tt.tr))
		})
	}
}

func TestMatches_TopSliceOnly(t *testing.T) {
	tr := domain.Transition{FromState: "q0", InputSymbol: domain.Epsilon(), InputStackSymbols: domain.NewStack("Z", "V")}

	tests := []struct {
		name  string
		stack domain.Stack
		want  bool
	}{
		{"exact stack", domain.NewStack("Z", "V"), true},
		{"required below the top", domain.NewStack("Z", "V", "V"), false},
		{"required on top of more", domain.NewStack("V", "Z", "V"), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := domain.NewConfiguration("q0", nil, tt.stack)
			assert.Equal(t, tt.want, runtime.Matches(c, tr))
		})
	}
}

func TestMatches_EmptyWord(t *testing.T) {
	c := domain.NewConfiguration("q0", nil, domain.NewStack("Z"))

	assert.False(t, runtime.Matches(c, domain.Transition{FromState: "q0", InputSymbol: domain.Read("a")}))
	assert.True(t, runtime.Matches(c, domain.Transition{FromState: "q0", InputSymbol: domain.Epsilon()}))
}

func TestApply(t *testing.T) {
	c := domain.NewConfiguration("q0", domain.NewWord("a", "b"), domain.NewStack("Z", "V"))

	t.Run("consumes and replaces the top", func(t *testing.T) {
		next := runtime.Apply(c, domain.Transition{
			FromState:          "q0",
			InputSymbol:        domain.Read("a"),
			InputStackSymbols:  domain.NewStack("V"),
			ToState:            "q1",
			OutputStackSymbols: domain.NewStack("V", "W"),
		})

		assert.Equal(t, domain.State("q1"), next.State)
		assert.Equal(t, domain.NewWord("b"), next.Word)
		assert.Equal(t, domain.NewStack("Z", "V", "W"), next.Stack)
		assert.Same(t, c, next.Predecessor())
		assert.Equal(t, 1, next.Depth())
	})

	t.Run("epsilon keeps the word", func(t *testing.T) {
		next := runtime.Apply(c, domain.Transition{
			FromState:         "q0",
			InputSymbol:       domain.Epsilon(),
			InputStackSymbols: domain.NewStack("Z", "V"),
			ToState:           "q0",
		})

		assert.Equal(t, c.Word, next.Word)
		assert.Empty(t, next.Stack)
	})

	t.Run("source is not modified", func(t *testing.T) {
		a := runtime.Apply(c, domain.Transition{FromState: "q0", InputSymbol: domain.Epsilon(), InputStackSymbols: domain.NewStack("V"), OutputStackSymbols: domain.NewStack("X")})
		b := runtime.Apply(c, domain.Transition{FromState: "q0", InputSymbol: domain.Epsilon(), InputStackSymbols: domain.NewStack("V"), OutputStackSymbols: domain.NewStack("Y")})

		require.Equal(t, domain.NewStack("Z", "V"), c.Stack)
		assert.Equal(t, domain.NewStack("Z", "X"), a.Stack)
		assert.Equal(t, domain.NewStack("Z", "Y"), b.Stack)
	})
}
