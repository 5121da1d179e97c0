package domain

import "fmt"

// Transition is one rule of the transition table.
//
// InputStackSymbols must equal the top of the stack (the tail of the Stack slice, same
// order). When the transition fires they are removed and OutputStackSymbols are appended
// in order, so the last output symbol becomes the new top.
type Transition struct {
	FromState          State         `json:"from_state"`
	InputSymbol        InputSymbol   `json:"input_symbol"`
	InputStackSymbols  []StackSymbol `json:"input_stack_symbols"`
	ToState            State         `json:"to_state"`
	OutputStackSymbols []StackSymbol `json:"output_stack_symbols"`
}

func (t Transition) String() string {
	return fmt.Sprintf("(%s, %s, %s) -> (%s, %s)",
		t.FromState, t.InputSymbol, Stack(t.InputStackSymbols), t.ToState, Stack(t.OutputStackSymbols))
}
