package magazine_test

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/aretw0/magazine"
	"github.com/aretw0/magazine/pkg/domain"
)

// balanced accepts a^n b^n by emptying the stack.
func balanced() *domain.Definition {
	z, a := domain.StackSymbol("Z"), domain.StackSymbol("A")
	return &domain.Definition{
		Name:                    "balanced",
		States:                  []domain.State{"q0", "q1"},
		AlphabetSymbols:         []domain.Symbol{"a", "b"},
		StackSymbols:            []domain.StackSymbol{z, a},
		InitialState:            "q0",
		InitialStackSymbol:      z,
		AcceptThroughEmptyStack: true,
		Transitions: []domain.Transition{
			{FromState: "q0", InputSymbol: domain.Read("a"), InputStackSymbols: []domain.StackSymbol{z}, ToState: "q0", OutputStackSymbols: []domain.StackSymbol{z, a}},
			{FromState: "q0", InputSymbol: domain.Read("a"), InputStackSymbols: []domain.StackSymbol{a}, ToState: "q0", OutputStackSymbols: []domain.StackSymbol{a, a}},
			{FromState: "q0", InputSymbol: domain.Read("b"), InputStackSymbols: []domain.StackSymbol{a}, ToState: "q1"},
			{FromState: "q1", InputSymbol: domain.Read("b"), InputStackSymbols: []domain.StackSymbol{a}, ToState: "q1"},
			{FromState: "q1", InputSymbol: domain.Epsilon(), InputStackSymbols: []domain.StackSymbol{z}, ToState: "q1"},
			{FromState: "q0", InputSymbol: domain.Epsilon(), InputStackSymbols: []domain.StackSymbol{z}, ToState: "q0"},
		},
	}
}

// ExampleNewFromDefinition evaluates words against an in-memory definition.
func ExampleNewFromDefinition() {
	eng, err := magazine.NewFromDefinition(balanced(), magazine.WithMaxTicks(20))
	if err != nil {
		log.Fatal(err)
	}

	for _, w := range []string{"aabb", "aab"} {
		verdict, err := eng.AcceptsString(context.Background(), w)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%s: %s after %d ticks\n", w, verdict.Outcome, verdict.Ticks)
	}

	// Output:
	// aabb: accepted after 5 ticks
	// aab: rejected after 4 ticks
}

// ExampleEngine_AcceptsWord_derivation prints the accepting path.
func ExampleEngine_AcceptsWord_derivation() {
	eng, err := magazine.NewFromDefinition(balanced())
	if err != nil {
		log.Fatal(err)
	}

	verdict, err := eng.AcceptsWord(context.Background(), magazine.ParseWord("ab"))
	if err != nil {
		log.Fatal(err)
	}
	for _, step := range verdict.Derivation {
		fmt.Println(step)
	}

	// Output:
	// (q0, ab, Z)
	// (q0, b, ZA)
	// (q1, ε, Z)
	// (q1, ε, ε)
}

// ExampleEngine_AcceptsWordWithin shows that running out of ticks is not a rejection.
func ExampleEngine_AcceptsWordWithin() {
	eng, err := magazine.NewFromDefinition(balanced())
	if err != nil {
		log.Fatal(err)
	}

	_, err = eng.AcceptsWordWithin(context.Background(), magazine.ParseWord("aabb"), 3)
	fmt.Println(errors.Is(err, domain.ErrTickLimitExceeded))

	// Output:
	// true
}
