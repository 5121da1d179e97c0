/*
Package domain contains the core models of the magazine (pushdown) automaton simulator.

It defines the static description of an automaton and the instantaneous snapshots the
simulation engine explores. The package is pure: no I/O, no persistence and no knowledge of
how definitions are parsed or how verdicts are presented.

# Key Entities

  - Definition: states, alphabets, initial state and stack symbol, acceptance mode and the
    ordered transition table. Read-only once built.
  - Transition: one rule of the table. Its input is an InputSymbol, which is either a real
    Symbol or Epsilon.
  - Configuration: a reachable snapshot (state, remaining word, stack) linked to the
    configuration it was derived from.
  - Verdict: the outcome of evaluating one word (accepted, rejected, tick limit exceeded)
    together with the accepting derivation.
  - LifecycleHooks: observational callbacks fired by the engine on reset, tick and verdict.
*/
package domain
