package compiler

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"

	"github.com/aretw0/magazine/pkg/domain"
)

const headerLines = 7

// emptyMarker stands for epsilon input or an empty stack word.
const emptyMarker = "-"

type sourceLine struct {
	number int
	fields []string
}

// ParseText parses the line-oriented text format.
func ParseText(name string, data []byte) (*domain.Definition, error) {
	lines, err := significantLines(data)
	if err != nil {
		return nil, err
	}
	if len(lines) < headerLines {
		return nil, parseErrorf(0, "incomplete header: expected %d lines, got %d", headerLines, len(lines))
	}

	header := lines[:headerLines]
	def := &domain.Definition{
		Name:            name,
		States:          toStates(listField(header[0].fields)),
		AlphabetSymbols: toSymbols(listField(header[1].fields)),
		StackSymbols:    domain.NewStack(listField(header[2].fields)...),
		AcceptedStates:  toStates(listField(header[5].fields)),
	}

	initial, err := single(header[3], "initial state line should contain one state")
	if err != nil {
		return nil, err
	}
	def.InitialState = domain.State(initial)

	stackSymbol, err := single(header[4], "initial stack symbol line should contain one symbol")
	if err != nil {
		return nil, err
	}
	def.InitialStackSymbol = domain.StackSymbol(stackSymbol)

	mode, err := single(header[6], "acceptance line should contain 'E' or 'F'")
	if err != nil {
		return nil, err
	}
	def.AcceptThroughEmptyStack, err = parseMode(mode)
	if err != nil {
		return nil, parseErrorf(header[6].number, "%s", err)
	}

	for _, line := range lines[headerLines:] {
		t, err := transitionFromFields(line.fields)
		if err != nil {
			return nil, parseErrorf(line.number, "%s", err)
		}
		def.Transitions = append(def.Transitions, t)
	}

	if err := def.Validate(); err != nil {
		return nil, err
	}
	return def, nil
}

// ParseTransitionLine parses "from input pop to push".
func ParseTransitionLine(line string) (domain.Transition, error) {
	return transitionFromFields(strings.Fields(line))
}

func transitionFromFields(fields []string) (domain.Transition, error) {
	if len(fields) < 5 {
		return domain.Transition{}, fmt.Errorf("transition needs 5 fields (from input pop to push), got %d", len(fields))
	}
	if len(fields) > 5 {
		return domain.Transition{}, fmt.Errorf("transition line contains more fields than needed: %q", strings.Join(fields, " "))
	}
	return domain.Transition{
		FromState:          domain.State(fields[0]),
		InputSymbol:        inputSymbol(fields[1]),
		InputStackSymbols:  splitStackWord(fields[2]),
		ToState:            domain.State(fields[3]),
		OutputStackSymbols: splitStackWord(fields[4]),
	}, nil
}

// significantLines drops comments everywhere and blank lines after the header.
// Header lines are positional, so a blank one is kept as an empty list.
func significantLines(data []byte) ([]sourceLine, error) {
	var lines []sourceLine
	scanner := bufio.NewScanner(bytes.NewReader(data))
	n := 0
	for scanner.Scan() {
		n++
		text := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(text, "#") || (text == "" && len(lines) >= headerLines) {
			continue
		}
		lines = append(lines, sourceLine{number: n, fields: strings.Fields(text)})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

func single(line sourceLine, msg string) (string, error) {
	if len(line.fields) != 1 {
		return "", parseErrorf(line.number, "%s, got %d", msg, len(line.fields))
	}
	return line.fields[0], nil
}

// listField treats a lone "-" as the empty list.
func listField(fields []string) []string {
	if len(fields) == 1 && isEmptyMarker(fields[0]) {
		return nil
	}
	return fields
}

func isEmptyMarker(s string) bool {
	return s == "" || s == emptyMarker || s == domain.EpsilonMarker
}

func inputSymbol(s string) domain.InputSymbol {
	if isEmptyMarker(s) {
		return domain.Epsilon()
	}
	return domain.Read(domain.Symbol(s))
}

// splitStackWord reads a stack word one character per symbol, bottom first.
func splitStackWord(s string) []domain.StackSymbol {
	if isEmptyMarker(s) {
		return nil
	}
	runes := []rune(s)
	out := make([]domain.StackSymbol, len(runes))
	for i, r := range runes {
		out[i] = domain.StackSymbol(r)
	}
	return out
}

func toStates(fields []string) []domain.State {
	if len(fields) == 0 {
		return nil
	}
	out := make([]domain.State, len(fields))
	for i, f := range fields {
		out[i] = domain.State(f)
	}
	return out
}

func toSymbols(fields []string) []domain.Symbol {
	if len(fields) == 0 {
		return nil
	}
	out := make([]domain.Symbol, len(fields))
	for i, f := range fields {
		out[i] = domain.Symbol(f)
	}
	return out
}
