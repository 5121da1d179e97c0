// Package compiler turns automaton sources into domain definitions.
//
// Two source formats are supported. The line-oriented text format has seven header lines
// (states, input alphabet, stack alphabet, initial state, initial stack symbol, accepted
// states, E or F) followed by one transition per line:
//
//	from input pop to push
//
// Document formats (YAML, JSON, or Markdown frontmatter through the loam adapter) describe
// the same fields by name, with transitions given either as text lines or as maps.
package compiler
