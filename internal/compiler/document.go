package compiler

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/aretw0/magazine/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Document is the named-field form of a definition, shared by YAML, JSON and frontmatter.
type Document struct {
	Name               string   `json:"name,omitempty" yaml:"name,omitempty" mapstructure:"name"`
	States             []string `json:"states" yaml:"states" mapstructure:"states"`
	Alphabet           []string `json:"alphabet" yaml:"alphabet" mapstructure:"alphabet"`
	StackAlphabet      []string `json:"stack_alphabet" yaml:"stack_alphabet" mapstructure:"stack_alphabet"`
	InitialState       string   `json:"initial_state" yaml:"initial_state" mapstructure:"initial_state"`
	InitialStackSymbol string   `json:"initial_stack_symbol" yaml:"initial_stack_symbol" mapstructure:"initial_stack_symbol"`
	AcceptedStates     []string `json:"accepted_states" yaml:"accepted_states" mapstructure:"accepted_states"`
	// Acceptance is "empty_stack" (or "E") or "final_state" (or "F", the default).
	Acceptance string `json:"acceptance,omitempty" yaml:"acceptance,omitempty" mapstructure:"acceptance"`
	// Transitions holds text lines or TransitionSpec maps.
	Transitions []any `json:"transitions" yaml:"transitions" mapstructure:"transitions"`
}

// TransitionSpec is the map form of a transition.
// Pop and Push accept a string (one symbol per character) or a list of symbols.
// A missing or null Input is epsilon.
type TransitionSpec struct {
	From  string  `json:"from" mapstructure:"from"`
	Input *string `json:"input" mapstructure:"input"`
	Pop   any     `json:"pop" mapstructure:"pop"`
	To    string  `json:"to" mapstructure:"to"`
	Push  any     `json:"push" mapstructure:"push"`
}

// ParseYAML decodes and builds a YAML document.
func ParseYAML(name string, data []byte) (*domain.Definition, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse yaml definition: %w", err)
	}
	return Build(name, doc)
}

// ParseJSON decodes and builds a JSON document.
func ParseJSON(name string, data []byte) (*domain.Definition, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse json definition: %w", err)
	}
	return Build(name, doc)
}

// Build converts doc into a validated definition. doc.Name wins over name when set.
func Build(name string, doc Document) (*domain.Definition, error) {
	if doc.Name != "" {
		name = doc.Name
	}
	emptyStack, err := parseMode(doc.Acceptance)
	if err != nil {
		return nil, &domain.ValidationError{Key: "acceptance", Reason: err.Error(), Value: doc.Acceptance}
	}

	def := &domain.Definition{
		Name:                    name,
		States:                  toStates(doc.States),
		AlphabetSymbols:         toSymbols(doc.Alphabet),
		StackSymbols:            domain.NewStack(doc.StackAlphabet...),
		InitialState:            domain.State(doc.InitialState),
		InitialStackSymbol:      domain.StackSymbol(doc.InitialStackSymbol),
		AcceptedStates:          toStates(doc.AcceptedStates),
		AcceptThroughEmptyStack: emptyStack,
	}

	for i, item := range doc.Transitions {
		t, err := decodeTransition(item)
		if err != nil {
			return nil, &domain.ValidationError{Key: fmt.Sprintf("transitions[%d]", i), Reason: err.Error()}
		}
		def.Transitions = append(def.Transitions, t)
	}

	if err := def.Validate(); err != nil {
		return nil, err
	}
	return def, nil
}

func decodeTransition(item any) (domain.Transition, error) {
	switch v := item.(type) {
	case string:
		return ParseTransitionLine(v)
	case map[string]any, map[any]any:
		var spec TransitionSpec
		if err := mapstructure.Decode(v, &spec); err != nil {
			return domain.Transition{}, fmt.Errorf("failed to decode transition: %w", err)
		}
		return spec.Transition()
	default:
		return domain.Transition{}, fmt.Errorf("invalid transition type %T", v)
	}
}

// Transition converts the spec into a domain transition.
func (s TransitionSpec) Transition() (domain.Transition, error) {
	if s.From == "" || s.To == "" {
		return domain.Transition{}, errors.New("transition requires from and to")
	}
	pop, err := stackWord(s.Pop)
	if err != nil {
		return domain.Transition{}, fmt.Errorf("pop: %w", err)
	}
	push, err := stackWord(s.Push)
	if err != nil {
		return domain.Transition{}, fmt.Errorf("push: %w", err)
	}
	input := domain.Epsilon()
	if s.Input != nil {
		input = inputSymbol(*s.Input)
	}
	return domain.Transition{
		FromState:          domain.State(s.From),
		InputSymbol:        input,
		InputStackSymbols:  pop,
		ToState:            domain.State(s.To),
		OutputStackSymbols: push,
	}, nil
}

func stackWord(v any) ([]domain.StackSymbol, error) {
	switch w := v.(type) {
	case nil:
		return nil, nil
	case string:
		return splitStackWord(w), nil
	case []string:
		return domain.NewStack(w...), nil
	case []any:
		out := make([]domain.StackSymbol, 0, len(w))
		for _, item := range w {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("stack symbol must be a string, got %T", item)
			}
			out = append(out, domain.StackSymbol(s))
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expected string or list, got %T", v)
	}
}

func parseMode(mode string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "e", "empty_stack":
		return true, nil
	case "", "f", "final_state":
		return false, nil
	default:
		return false, fmt.Errorf("unknown acceptance mode %q, expected 'E' or 'F'", mode)
	}
}
