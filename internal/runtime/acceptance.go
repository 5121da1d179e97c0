package runtime

import (
	"github.com/aretw0/magazine/pkg/domain"
	"github.com/bits-and-blooms/bitset"
)

// AcceptanceChecker evaluates configurations against the acceptance mode of a definition.
type AcceptanceChecker struct {
	emptyStack bool
	index      map[domain.State]uint
	accepted   *bitset.BitSet
}

// NewAcceptanceChecker precomputes the accepted-state set of def.
func NewAcceptanceChecker(def *domain.Definition) *AcceptanceChecker {
	index := def.StateIndex()
	accepted := bitset.New(uint(len(def.States)))
	for _, s := range def.AcceptedStates {
		if i, ok := index[s]; ok {
			accepted.Set(i)
		}
	}
	return &AcceptanceChecker{
		emptyStack: def.AcceptThroughEmptyStack,
		index:      index,
		accepted:   accepted,
	}
}

// IsAccepting reports whether c accepts: the word is fully consumed and either the stack
// is empty (empty-stack mode) or the state is accepted (final-state mode).
func (a *AcceptanceChecker) IsAccepting(c *domain.Configuration) bool {
	if len(c.Word) != 0 {
		return false
	}
	if a.emptyStack {
		return len(c.Stack) == 0
	}
	i, ok := a.index[c.State]
	return ok && a.accepted.Test(i)
}

// First returns the first accepting member of set, or nil.
func (a *AcceptanceChecker) First(set *ConfigurationSet) *domain.Configuration {
	for _, c := range set.Items() {
		if a.IsAccepting(c) {
			return c
		}
	}
	return nil
}

// IsAccepting is the one-shot form of AcceptanceChecker.IsAccepting.
func IsAccepting(c *domain.Configuration, def *domain.Definition) bool {
	if len(c.Word) != 0 {
		return false
	}
	if def.AcceptThroughEmptyStack {
		return len(c.Stack) == 0
	}
	return def.IsAcceptedState(c.State)
}
