// Package runtime implements the breadth-first simulation of a magazine automaton.
//
// An Engine keeps the frontier of simultaneously reachable configurations and advances it
// one synchronous tick at a time until a configuration is accepted, the frontier dies out,
// or the tick budget runs out.
package runtime
