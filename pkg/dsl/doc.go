/*
Package dsl provides a fluent Go builder for magazine automata.

It is an alternative to text, YAML or JSON definition files when an automaton is
generated by code or declared inline in a test.

Example usage:

	def, err := dsl.New("balanced").
		Start("q0", "Z").
		AcceptByEmptyStack().
		From("q0").Read("a").Pop("Z").Push("Z", "A").To("q0").
		From("q0").Read("a").Pop("A").Push("A", "A").To("q0").
		From("q0").Read("b").Pop("A").To("q1").
		From("q1").Read("b").Pop("A").To("q1").
		From("q1").Pop("Z").To("q1").
		From("q0").Pop("Z").To("q0").
		Build()

States, input symbols and stack symbols are collected from the rules. Declare them
explicitly with States, Alphabet and StackAlphabet when some are never used by a rule.
*/
package dsl
