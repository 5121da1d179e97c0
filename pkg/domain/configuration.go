package domain

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Configuration is an instantaneous snapshot of the automaton.
//
// Configurations are immutable. Identity for deduplication is (State, Word, Stack);
// the predecessor link is excluded from equality.
type Configuration struct {
	State State
	Word  Word
	Stack Stack

	prev  *Configuration
	depth int
}

// NewConfiguration creates a root configuration without a predecessor.
func NewConfiguration(state State, word Word, stack Stack) *Configuration {
	return &Configuration{State: state, Word: word, Stack: stack}
}

// Derive creates a successor configuration whose predecessor is c.
// The caller must not modify word or stack afterwards.
func (c *Configuration) Derive(state State, word Word, stack Stack) *Configuration {
	return &Configuration{
		State: state,
		Word:  word,
		Stack: stack,
		prev:  c,
		depth: c.depth + 1,
	}
}

// Predecessor returns the configuration c was derived from, or nil for a root.
func (c *Configuration) Predecessor() *Configuration {
	return c.prev
}

// Depth is the number of transitions between the root and c.
func (c *Configuration) Depth() int {
	return c.depth
}

// Key returns a canonical encoding of (State, Word, Stack).
// Every component is length-prefixed so distinct triples never collide.
func (c *Configuration) Key() string {
	var b strings.Builder
	writeToken(&b, string(c.State))
	b.WriteByte('|')
	b.WriteString(strconv.Itoa(len(c.Word)))
	for _, s := range c.Word {
		writeToken(&b, string(s))
	}
	b.WriteByte('|')
	b.WriteString(strconv.Itoa(len(c.Stack)))
	for _, s := range c.Stack {
		writeToken(&b, string(s))
	}
	return b.String()
}

func writeToken(b *strings.Builder, s string) {
	b.WriteByte('#')
	b.WriteString(strconv.Itoa(len(s)))
	b.WriteByte(':')
	b.WriteString(s)
}

// Equal compares (State, Word, Stack), ignoring history.
func (c *Configuration) Equal(other *Configuration) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.State == other.State &&
		slices.Equal(c.Word, other.Word) &&
		slices.Equal(c.Stack, other.Stack)
}

// Path walks the predecessor chain and returns it from the root to c.
func (c *Configuration) Path() []*Configuration {
	path := make([]*Configuration, c.depth+1)
	for cur, i := c, c.depth; cur != nil; cur, i = cur.prev, i-1 {
		path[i] = cur
	}
	return path
}

// Derivation returns the snapshots of Path.
func (c *Configuration) Derivation() []Snapshot {
	path := c.Path()
	out := make([]Snapshot, len(path))
	for i, p := range path {
		out[i] = p.Snapshot()
	}
	return out
}

// Snapshot returns the (state, word, stack) triple of c.
func (c *Configuration) Snapshot() Snapshot {
	return Snapshot{
		State: c.State,
		Word:  append(Word{}, c.Word...),
		Stack: append(Stack{}, c.Stack...),
	}
}

func (c *Configuration) String() string {
	return fmt.Sprintf("(%s, %s, %s)", c.State, c.Word, c.Stack)
}

// Snapshot is the serialisable (state, word, stack) triple used in diagnostics.
type Snapshot struct {
	State State `json:"state"`
	Word  Word  `json:"word"`
	Stack Stack `json:"stack"`
}

func (s Snapshot) String() string {
	return fmt.Sprintf("(%s, %s, %s)", s.State, s.Word, s.Stack)
}
