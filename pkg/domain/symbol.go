package domain

import (
	"encoding/json"
	"strings"
)

// State names a control state of the automaton.
type State string

// Symbol is one element of the input alphabet.
type Symbol string

// StackSymbol is one element of the stack alphabet.
type StackSymbol string

// Word is an input sequence. The front is the next symbol to consume.
type Word []Symbol

// Stack is a stack content. The logical top is the last element.
type Stack []StackSymbol

// EpsilonMarker is how an epsilon input is written in text and diagnostics.
const EpsilonMarker = "ε"

// NewWord builds a Word from plain strings.
func NewWord(symbols ...string) Word {
	w := make(Word, len(symbols))
	for i, s := range symbols {
		w[i] = Symbol(s)
	}
	return w
}

// NewStack builds a Stack from plain strings, bottom first.
func NewStack(symbols ...string) Stack {
	s := make(Stack, len(symbols))
	for i, sym := range symbols {
		s[i] = StackSymbol(sym)
	}
	return s
}

// String joins the symbols. Multi-character symbols are separated by spaces.
func (w Word) String() string {
	return joinSymbols(w)
}

// String joins the stack bottom to top.
func (s Stack) String() string {
	return joinSymbols(s)
}

// Top returns the topmost symbol, if any.
func (s Stack) Top() (StackSymbol, bool) {
	if len(s) == 0 {
		return "", false
	}
	return s[len(s)-1], true
}

func joinSymbols[T ~string](items []T) string {
	if len(items) == 0 {
		return EpsilonMarker
	}
	sep := ""
	for _, it := range items {
		if len(it) != 1 {
			sep = " "
			break
		}
	}
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = string(it)
	}
	return strings.Join(parts, sep)
}

// InputSymbol is the input side of a transition: either a Symbol that must be
// consumed from the front of the word, or epsilon (nothing is consumed).
// The zero value is epsilon.
type InputSymbol struct {
	symbol Symbol
	read   bool
}

// Read returns an InputSymbol consuming sym.
func Read(sym Symbol) InputSymbol {
	return InputSymbol{symbol: sym, read: true}
}

// Epsilon returns the InputSymbol that consumes nothing.
func Epsilon() InputSymbol {
	return InputSymbol{}
}

// IsEpsilon reports whether the input consumes nothing.
func (i InputSymbol) IsEpsilon() bool {
	return !i.read
}

// Symbol returns the consumed symbol. ok is false for epsilon.
func (i InputSymbol) Symbol() (sym Symbol, ok bool) {
	return i.symbol, i.read
}

func (i InputSymbol) String() string {
	if !i.read {
		return EpsilonMarker
	}
	return string(i.symbol)
}

// MarshalJSON encodes epsilon as null and a symbol as a string.
func (i InputSymbol) MarshalJSON() ([]byte, error) {
	if !i.read {
		return []byte("null"), nil
	}
	return json.Marshal(string(i.symbol))
}

// UnmarshalJSON accepts null for epsilon and a string for a symbol.
func (i *InputSymbol) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*i = Epsilon()
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*i = Read(Symbol(s))
	return nil
}
