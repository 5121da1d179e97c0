package validator

import (
	"fmt"
	"strings"

	"github.com/aretw0/magazine/pkg/domain"
	"github.com/bits-and-blooms/bitset"
)

// Severity classifies an Issue.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue is one finding of the static analysis.
type Issue struct {
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s", i.Severity, i.Message)
}

// Report collects every issue found for a definition.
type Report struct {
	Issues []Issue `json:"issues"`
	// Reachable lists the states reachable from the initial state, in declaration order.
	Reachable []domain.State `json:"reachable"`
}

// HasErrors reports whether any issue is an error.
func (r *Report) HasErrors() bool {
	for _, i := range r.Issues {
		if i.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Err folds the error issues into a single error, or returns nil.
func (r *Report) Err() error {
	var msgs []string
	for _, i := range r.Issues {
		if i.Severity == SeverityError {
			msgs = append(msgs, i.Message)
		}
	}
	if len(msgs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: found %d errors:\n- %s", domain.ErrInvalidDefinition, len(msgs), strings.Join(msgs, "\n- "))
}

func (r *Report) add(sev Severity, format string, args ...any) {
	r.Issues = append(r.Issues, Issue{Severity: sev, Message: fmt.Sprintf(format, args...)})
}

// ValidateDefinition checks def beyond its construction invariants: every transition refers
// to declared states and symbols, and every state can be reached from the initial state.
// Reachability ignores the stack, so it over-approximates the states the engine can visit.
func ValidateDefinition(def *domain.Definition) *Report {
	report := &Report{}
	if err := def.Validate(); err != nil {
		for _, e := range domain.ValidationErrors(err) {
			report.add(SeverityError, "%s", e)
		}
	}

	index := def.StateIndex()
	for i, t := range def.Transitions {
		checkTransition(report, def, index, i, t)
	}

	visited := reachable(def, index)
	for i, s := range def.States {
		if visited.Test(uint(i)) && index[s] == uint(i) {
			report.Reachable = append(report.Reachable, s)
		}
	}
	for i, s := range def.States {
		if index[s] != uint(i) {
			report.add(SeverityWarning, "state %q is declared more than once", s)
			continue
		}
		if !visited.Test(uint(i)) {
			report.add(SeverityWarning, "state %q is unreachable from %q", s, def.InitialState)
		}
	}

	if def.AcceptThroughEmptyStack {
		if len(def.AcceptedStates) > 0 {
			report.add(SeverityWarning, "accepted states are ignored when accepting through the empty stack")
		}
	} else if len(def.AcceptedStates) == 0 {
		report.add(SeverityWarning, "no accepted states: the automaton accepts no word")
	}

	return report
}

func checkTransition(report *Report, def *domain.Definition, index map[domain.State]uint, i int, t domain.Transition) {
	if _, ok := index[t.FromState]; !ok {
		report.add(SeverityError, "transition %d (%s): undeclared state %q", i, t, t.FromState)
	}
	if _, ok := index[t.ToState]; !ok {
		report.add(SeverityError, "transition %d (%s): undeclared state %q", i, t, t.ToState)
	}
	if sym, ok := t.InputSymbol.Symbol(); ok && !def.HasSymbol(sym) {
		report.add(SeverityError, "transition %d (%s): symbol %q is not in the input alphabet", i, t, sym)
	}
	for _, s := range t.InputStackSymbols {
		if !def.HasStackSymbol(s) {
			report.add(SeverityError, "transition %d (%s): stack symbol %q is not in the stack alphabet", i, t, s)
		}
	}
	for _, s := range t.OutputStackSymbols {
		if !def.HasStackSymbol(s) {
			report.add(SeverityError, "transition %d (%s): stack symbol %q is not in the stack alphabet", i, t, s)
		}
	}
}

// reachable walks the transition graph breadth-first from the initial state.
func reachable(def *domain.Definition, index map[domain.State]uint) *bitset.BitSet {
	visited := bitset.New(uint(len(def.States)))
	start, ok := index[def.InitialState]
	if !ok {
		return visited
	}

	edges := make(map[domain.State][]domain.State)
	for _, t := range def.Transitions {
		edges[t.FromState] = append(edges[t.FromState], t.ToState)
	}

	visited.Set(start)
	queue := []domain.State{def.InitialState}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, target := range edges[current] {
			i, ok := index[target]
			if !ok || visited.Test(i) {
				continue
			}
			visited.Set(i)
			queue = append(queue, target)
		}
	}
	return visited
}

// CheckWord lists the symbols of word that are not in the input alphabet.
// Such words are still evaluated; they simply cannot be accepted.
func CheckWord(def *domain.Definition, word domain.Word) []domain.Symbol {
	var unknown []domain.Symbol
	for _, s := range word {
		if !def.HasSymbol(s) {
			unknown = append(unknown, s)
		}
	}
	return unknown
}
