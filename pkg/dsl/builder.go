package dsl

import (
	"fmt"
	"slices"

	"github.com/aretw0/magazine/pkg/adapters/memory"
	"github.com/aretw0/magazine/pkg/domain"
)

// Builder manages the automaton construction.
type Builder struct {
	name        string
	states      []domain.State
	alphabet    []domain.Symbol
	stack       []domain.StackSymbol
	initial     domain.State
	bottom      domain.StackSymbol
	accepted    []domain.State
	emptyStack  bool
	transitions []domain.Transition
}

// New creates a new automaton builder. Acceptance defaults to final state.
func New(name string) *Builder {
	return &Builder{name: name}
}

// States declares states in order. Rules add any state they mention.
func (b *Builder) States(states ...string) *Builder {
	for _, s := range states {
		b.state(domain.State(s))
	}
	return b
}

// Alphabet declares input symbols in order.
func (b *Builder) Alphabet(symbols ...string) *Builder {
	for _, s := range symbols {
		b.symbol(domain.Symbol(s))
	}
	return b
}

// StackAlphabet declares stack symbols in order.
func (b *Builder) StackAlphabet(symbols ...string) *Builder {
	for _, s := range symbols {
		b.stackSymbol(domain.StackSymbol(s))
	}
	return b
}

// Start sets the initial state and the symbol the stack starts with.
func (b *Builder) Start(state, bottom string) *Builder {
	b.initial = domain.State(state)
	b.bottom = domain.StackSymbol(bottom)
	b.state(b.initial)
	b.stackSymbol(b.bottom)
	return b
}

// Accept adds accepting states and selects acceptance by final state.
func (b *Builder) Accept(states ...string) *Builder {
	b.emptyStack = false
	for _, s := range states {
		st := domain.State(s)
		b.state(st)
		if !slices.Contains(b.accepted, st) {
			b.accepted = append(b.accepted, st)
		}
	}
	return b
}

// AcceptByEmptyStack selects acceptance through the empty stack.
func (b *Builder) AcceptByEmptyStack() *Builder {
	b.emptyStack = true
	return b
}

// From starts a new rule leaving state. The rule is added when To is called.
func (b *Builder) From(state string) *RuleBuilder {
	return &RuleBuilder{
		builder: b,
		rule:    domain.Transition{FromState: domain.State(state)},
	}
}

// Build validates and returns the definition.
func (b *Builder) Build() (*domain.Definition, error) {
	def := &domain.Definition{
		Name:                    b.name,
		States:                  slices.Clone(b.states),
		AlphabetSymbols:         slices.Clone(b.alphabet),
		StackSymbols:            slices.Clone(b.stack),
		InitialState:            b.initial,
		InitialStackSymbol:      b.bottom,
		AcceptThroughEmptyStack: b.emptyStack,
		Transitions:             slices.Clone(b.transitions),
	}
	if !b.emptyStack {
		def.AcceptedStates = slices.Clone(b.accepted)
	}
	if err := def.Validate(); err != nil {
		return nil, fmt.Errorf("dsl %s: %w", b.name, err)
	}
	return def, nil
}

// Loader builds the definition and wraps it in a memory loader keyed by the builder name.
func (b *Builder) Loader() (*memory.Loader, error) {
	def, err := b.Build()
	if err != nil {
		return nil, err
	}
	loader, err := memory.NewLoader(def)
	if err != nil {
		return nil, fmt.Errorf("failed to build memory loader: %w", err)
	}
	return loader, nil
}

func (b *Builder) state(s domain.State) {
	if s != "" && !slices.Contains(b.states, s) {
		b.states = append(b.states, s)
	}
}

func (b *Builder) symbol(s domain.Symbol) {
	if s != "" && !slices.Contains(b.alphabet, s) {
		b.alphabet = append(b.alphabet, s)
	}
}

func (b *Builder) stackSymbol(s domain.StackSymbol) {
	if s != "" && !slices.Contains(b.stack, s) {
		b.stack = append(b.stack, s)
	}
}
