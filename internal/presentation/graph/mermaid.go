package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/magazine/pkg/domain"
)

// GraphOverlay contains run data to visualize on the graph.
type GraphOverlay struct {
	VisitedStates []domain.State
	CurrentState  domain.State
}

// OverlayFromDerivation marks every state on an accepting path as visited and the last one
// as current.
func OverlayFromDerivation(path []domain.Snapshot) *GraphOverlay {
	if len(path) == 0 {
		return nil
	}
	o := &GraphOverlay{CurrentState: path[len(path)-1].State}
	for _, s := range path {
		o.VisitedStates = append(o.VisitedStates, s.State)
	}
	return o
}

// GenerateMermaid produces a Mermaid flowchart of the automaton.
// It applies semantic styling:
// - Initial state: ((Circle))
// - Accepted state: (((Double circle)))
// - Default: [Rectangle]
// Transitions between the same pair of states share one edge labelled "input, pop / push",
// one line per rule. Overlay styles are applied if provided.
func GenerateMermaid(def *domain.Definition, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	for _, st := range def.States {
		safeID := sanitizeMermaidID(string(st))

		opener, closer := "[", "]"
		switch {
		case def.IsAcceptedState(st) && !def.AcceptThroughEmptyStack:
			opener, closer = "(((", ")))"
		case st == def.InitialState:
			opener, closer = "((", "))"
		}
		fmt.Fprintf(&sb, "    %s%s\"%s\"%s\n", safeID, opener, st, closer)
	}

	if def.InitialState != "" {
		fmt.Fprintf(&sb, "    start_[ ] --> %s\n", sanitizeMermaidID(string(def.InitialState)))
		sb.WriteString("    style start_ fill:none,stroke:none\n")
	}

	type edge struct{ from, to domain.State }
	var order []edge
	labels := make(map[edge][]string)
	for _, t := range def.Transitions {
		e := edge{t.FromState, t.ToState}
		if _, ok := labels[e]; !ok {
			order = append(order, e)
		}
		labels[e] = append(labels[e], TransitionLabel(t))
	}
	for _, e := range order {
		label := strings.ReplaceAll(strings.Join(labels[e], "<br/>"), "\"", "'")
		fmt.Fprintf(&sb, "    %s -- \"%s\" --> %s\n",
			sanitizeMermaidID(string(e.from)), label, sanitizeMermaidID(string(e.to)))
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds.
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		seen := make(map[string]bool)
		for _, st := range overlay.VisitedStates {
			safeID := sanitizeMermaidID(string(st))
			if !seen[safeID] && safeID != "" {
				seen[safeID] = true
				fmt.Fprintf(&sb, "    class %s visited;\n", safeID)
			}
		}
		if overlay.CurrentState != "" {
			fmt.Fprintf(&sb, "    class %s current;\n", sanitizeMermaidID(string(overlay.CurrentState)))
		}
	}

	return sb.String()
}

// TransitionLabel renders a rule as "input, pop / push" with ε for empty parts.
func TransitionLabel(t domain.Transition) string {
	return fmt.Sprintf("%s, %s / %s", t.InputSymbol, domain.Stack(t.InputStackSymbols), domain.Stack(t.OutputStackSymbols))
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}
