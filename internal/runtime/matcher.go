package runtime

import (
	"slices"

	"github.com/aretw0/magazine/pkg/domain"
)

// Matches reports whether t can fire from c: same state, the required symbols sit on top
// of the stack, and the input is either epsilon or the next symbol of the word.
func Matches(c *domain.Configuration, t domain.Transition) bool {
	if t.FromState != c.State {
		return false
	}
	if !hasStackTop(c.Stack, t.InputStackSymbols) {
		return false
	}
	sym, reads := t.InputSymbol.Symbol()
	if !reads {
		return true
	}
	return len(c.Word) > 0 && c.Word[0] == sym
}

// hasStackTop compares the tail of stack with required, element by element.
func hasStackTop(stack domain.Stack, required []domain.StackSymbol) bool {
	if len(required) > len(stack) {
		return false
	}
	return slices.Equal(stack[len(stack)-len(required):], required)
}

// Apply fires t on c and returns the resulting configuration, linked back to c.
// It must only be called when Matches(c, t) holds. c is never modified.
func Apply(c *domain.Configuration, t domain.Transition) *domain.Configuration {
	word := c.Word
	if !t.InputSymbol.IsEpsilon() {
		word = word[1:]
	}

	keep := len(c.Stack) - len(t.InputStackSymbols)
	stack := make(domain.Stack, keep, keep+len(t.OutputStackSymbols))
	copy(stack, c.Stack[:keep])
	stack = append(stack, t.OutputStackSymbols...)

	return c.Derive(t.ToState, word, stack)
}
