/*
Package magazine simulates nondeterministic pushdown ("magazine") automata.

A definition lists states, an input alphabet, a stack alphabet, an initial state and stack
symbol, an acceptance mode (empty stack or final state) and a transition table. The engine
answers whether a word is accepted by exploring every reachable configuration breadth-first,
one tick at a time, until a configuration accepts, every branch dies out, or the tick budget
runs out.

# Concept

A configuration is the triple (state, remaining word, stack). A tick applies every matching
transition to every configuration of the frontier; duplicates are merged. Because the search
is breadth-first, an accepting configuration reachable in k transitions is found after k
ticks, and its derivation is recovered through predecessor links.

Running out of ticks is reported as an error matching domain.ErrTickLimitExceeded. It is not
a rejection: the word may still be accepted with a larger budget.

# Usage

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/aretw0/magazine"
	)

	func main() {
		// Reads ./balanced.pda (text format) or a Loam directory of definitions.
		eng, err := magazine.New("./balanced.pda", magazine.WithMaxTicks(100))
		if err != nil {
			log.Fatal(err)
		}

		verdict, err := eng.AcceptsString(context.Background(), "aabb")
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(verdict.Outcome) // accepted
	}

# Text format

	q0 q1          states
	a b            input alphabet
	Z A            stack alphabet
	q0             initial state
	Z              initial stack symbol
	-              accepted states ("-" for none)
	E              E: empty stack, F: final state
	q0 a Z q0 ZA   from input pop to push

Stack words are written bottom to top, one symbol per character. "-" stands for epsilon
input or an empty stack word.
*/
package magazine
