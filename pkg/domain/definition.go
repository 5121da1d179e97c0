package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"slices"
)

// Definition is the static description of a magazine automaton.
// It is built once by a loader or compiler and never mutated afterwards.
type Definition struct {
	// Name is a descriptive label (file or document name). It is not part of the automaton.
	Name string `json:"name,omitempty"`

	States             []State       `json:"states"`
	AlphabetSymbols    []Symbol      `json:"alphabet_symbols"`
	StackSymbols       []StackSymbol `json:"stack_symbols"`
	InitialState       State         `json:"initial_state"`
	InitialStackSymbol StackSymbol   `json:"initial_stack_symbol"`
	AcceptedStates     []State       `json:"accepted_states"`

	// AcceptThroughEmptyStack selects acceptance by empty stack instead of by final state.
	AcceptThroughEmptyStack bool `json:"accept_through_empty_stack"`

	Transitions []Transition `json:"transitions"`
}

// AcceptanceMode names the acceptance condition for display.
func (d *Definition) AcceptanceMode() string {
	if d.AcceptThroughEmptyStack {
		return "empty_stack"
	}
	return "final_state"
}

// HasState reports whether s is declared.
func (d *Definition) HasState(s State) bool {
	return slices.Contains(d.States, s)
}

// HasSymbol reports whether sym belongs to the input alphabet.
func (d *Definition) HasSymbol(sym Symbol) bool {
	return slices.Contains(d.AlphabetSymbols, sym)
}

// HasStackSymbol reports whether sym belongs to the stack alphabet.
func (d *Definition) HasStackSymbol(sym StackSymbol) bool {
	return slices.Contains(d.StackSymbols, sym)
}

// IsAcceptedState reports whether s is one of the accepted states.
func (d *Definition) IsAcceptedState(s State) bool {
	return slices.Contains(d.AcceptedStates, s)
}

// StateIndex maps every declared state to its position in States.
func (d *Definition) StateIndex() map[State]uint {
	idx := make(map[State]uint, len(d.States))
	for i, s := range d.States {
		if _, seen := idx[s]; !seen {
			idx[s] = uint(i)
		}
	}
	return idx
}

// Digest returns a stable fingerprint of the automaton, ignoring Name.
// Two definitions with the same digest accept the same words.
func (d *Definition) Digest() string {
	clone := *d
	clone.Name = ""
	clone.States = nilIfEmpty(clone.States)
	clone.AlphabetSymbols = nilIfEmpty(clone.AlphabetSymbols)
	clone.StackSymbols = nilIfEmpty(clone.StackSymbols)
	clone.AcceptedStates = nilIfEmpty(clone.AcceptedStates)
	clone.Transitions = make([]Transition, len(d.Transitions))
	for i, t := range d.Transitions {
		t.InputStackSymbols = nilIfEmpty(t.InputStackSymbols)
		t.OutputStackSymbols = nilIfEmpty(t.OutputStackSymbols)
		clone.Transitions[i] = t
	}
	data, err := json.Marshal(&clone)
	if err != nil {
		// Every field is JSON-safe; this cannot happen.
		panic(err)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func nilIfEmpty[S ~[]E, E any](s S) S {
	if len(s) == 0 {
		return nil
	}
	return s
}

// Validate checks the construction-time invariants: the initial state and stack symbol
// are declared and every accepted state is a declared state.
func (d *Definition) Validate() error {
	var errs []error

	if len(d.States) == 0 {
		errs = append(errs, &ValidationError{Key: "states", Reason: "at least one state is required"})
	}
	if !d.HasState(d.InitialState) {
		errs = append(errs, &ValidationError{Key: "initial_state", Reason: "not a declared state", Value: string(d.InitialState)})
	}
	if !d.HasStackSymbol(d.InitialStackSymbol) {
		errs = append(errs, &ValidationError{Key: "initial_stack_symbol", Reason: "not a declared stack symbol", Value: string(d.InitialStackSymbol)})
	}
	for _, s := range d.AcceptedStates {
		if !d.HasState(s) {
			errs = append(errs, &ValidationError{Key: "accepted_states", Reason: "not a declared state", Value: string(s)})
		}
	}

	if len(errs) > 0 {
		return &AggregateError{Errors: errs}
	}
	return nil
}
