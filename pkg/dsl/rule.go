package dsl

import "github.com/aretw0/magazine/pkg/domain"

// RuleBuilder provides a fluent API for configuring one transition.
// Without Read the rule is an epsilon move.
type RuleBuilder struct {
	builder *Builder
	rule    domain.Transition
}

// Read makes the rule consume symbol from the front of the word.
func (r *RuleBuilder) Read(symbol string) *RuleBuilder {
	r.rule.InputSymbol = domain.Read(domain.Symbol(symbol))
	return r
}

// Epsilon makes the rule consume nothing.
func (r *RuleBuilder) Epsilon() *RuleBuilder {
	r.rule.InputSymbol = domain.Epsilon()
	return r
}

// Pop sets the symbols that must sit on top of the stack, written bottom to top.
func (r *RuleBuilder) Pop(symbols ...string) *RuleBuilder {
	r.rule.InputStackSymbols = domain.NewStack(symbols...)
	return r
}

// Push sets the symbols written in place of the popped ones, bottom to top.
func (r *RuleBuilder) Push(symbols ...string) *RuleBuilder {
	r.rule.OutputStackSymbols = domain.NewStack(symbols...)
	return r
}

// To sets the target state and adds the rule to the automaton.
func (r *RuleBuilder) To(state string) *Builder {
	b := r.builder
	r.rule.ToState = domain.State(state)

	b.state(r.rule.FromState)
	b.state(r.rule.ToState)
	if sym, ok := r.rule.InputSymbol.Symbol(); ok {
		b.symbol(sym)
	}
	for _, s := range r.rule.InputStackSymbols {
		b.stackSymbol(s)
	}
	for _, s := range r.rule.OutputStackSymbols {
		b.stackSymbol(s)
	}
	b.transitions = append(b.transitions, r.rule)
	return b
}

// Rule returns the transition configured so far without adding it.
func (r *RuleBuilder) Rule() domain.Transition {
	return r.rule
}
