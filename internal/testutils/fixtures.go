package testutils

import (
	"fmt"

	"github.com/aretw0/magazine/pkg/domain"
)

// BalancedDefinition accepts a^n b^n (n >= 0) through the empty stack, starting from [Z].
func BalancedDefinition() *domain.Definition {
	return &domain.Definition{
		Name:                    "balanced",
		States:                  []domain.State{"q0", "q1"},
		AlphabetSymbols:         []domain.Symbol{"a", "b"},
		StackSymbols:            []domain.StackSymbol{"Z", "A"},
		InitialState:            "q0",
		InitialStackSymbol:      "Z",
		AcceptThroughEmptyStack: true,
		Transitions: []domain.Transition{
			{FromState: "q0", InputSymbol: domain.Read("a"), InputStackSymbols: stack("Z"), ToState: "q0", OutputStackSymbols: stack("Z", "A")},
			{FromState: "q0", InputSymbol: domain.Read("a"), InputStackSymbols: stack("A"), ToState: "q0", OutputStackSymbols: stack("A", "A")},
			{FromState: "q0", InputSymbol: domain.Read("b"), InputStackSymbols: stack("A"), ToState: "q1"},
			{FromState: "q1", InputSymbol: domain.Read("b"), InputStackSymbols: stack("A"), ToState: "q1"},
			{FromState: "q1", InputSymbol: domain.Epsilon(), InputStackSymbols: stack("Z"), ToState: "q1"},
			{FromState: "q0", InputSymbol: domain.Epsilon(), InputStackSymbols: stack("Z"), ToState: "q0"},
		},
	}
}

// BalancedText is BalancedDefinition in the line-oriented text format.
const BalancedText = `q0 q1
a b
Z A
q0
Z
-
E
q0 a Z q0 ZA
q0 a A q0 AA
q0 b A q1 -
q1 b A q1 -
q1 - Z q1 -
q0 - Z q0 -
`

// WordDefinition treats each listed word as a single input symbol and accepts it by final
// state in exactly one tick. The empty word is accepted through an epsilon move.
func WordDefinition(words ...string) *domain.Definition {
	def := &domain.Definition{
		Name:               "words",
		States:             []domain.State{"q0", "qf"},
		StackSymbols:       []domain.StackSymbol{"Z"},
		InitialState:       "q0",
		InitialStackSymbol: "Z",
		AcceptedStates:     []domain.State{"qf"},
		Transitions: []domain.Transition{
			{FromState: "q0", InputSymbol: domain.Epsilon(), InputStackSymbols: stack("Z"), ToState: "qf", OutputStackSymbols: stack("Z")},
		},
	}
	for _, w := range words {
		if w == "" {
			continue
		}
		def.AlphabetSymbols = append(def.AlphabetSymbols, domain.Symbol(w))
		def.Transitions = append(def.Transitions, domain.Transition{
			FromState:          "q0",
			InputSymbol:        domain.Read(domain.Symbol(w)),
			InputStackSymbols:  stack("Z"),
			ToState:            "qf",
			OutputStackSymbols: stack("Z"),
		})
	}
	return def
}

// ScenarioWords are the words WordDefinition is exercised with.
var ScenarioWords = []string{"", "aa", "aaaa", "bb", "bbbb", "aabb", "aabbbb"}

// ChainDefinition needs exactly n epsilon ticks to accept the empty word by final state.
func ChainDefinition(n int) *domain.Definition {
	def := &domain.Definition{
		Name:               fmt.Sprintf("chain-%d", n),
		StackSymbols:       []domain.StackSymbol{"Z"},
		InitialState:       "s0",
		InitialStackSymbol: "Z",
	}
	for i := 0; i <= n; i++ {
		def.States = append(def.States, domain.State(fmt.Sprintf("s%d", i)))
	}
	def.AcceptedStates = []domain.State{def.States[n]}
	for i := 0; i < n; i++ {
		def.Transitions = append(def.Transitions, domain.Transition{
			FromState:          def.States[i],
			InputSymbol:        domain.Epsilon(),
			InputStackSymbols:  stack("Z"),
			ToState:            def.States[i+1],
			OutputStackSymbols: stack("Z"),
		})
	}
	return def
}

// LoopDefinition never accepts and never runs out of configurations:
// it pushes forever on epsilon.
func LoopDefinition() *domain.Definition {
	return &domain.Definition{
		Name:               "loop",
		States:             []domain.State{"q0", "qf"},
		AlphabetSymbols:    []domain.Symbol{"a"},
		StackSymbols:       []domain.StackSymbol{"Z"},
		InitialState:       "q0",
		InitialStackSymbol: "Z",
		AcceptedStates:     []domain.State{"qf"},
		Transitions: []domain.Transition{
			{FromState: "q0", InputSymbol: domain.Epsilon(), InputStackSymbols: stack("Z"), ToState: "q0", OutputStackSymbols: stack("Z", "Z")},
		},
	}
}

func stack(symbols ...string) []domain.StackSymbol {
	return domain.NewStack(symbols...)
}
