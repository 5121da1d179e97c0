package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/magazine/pkg/domain"
	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a function that renders markdown using glamour.
func NewRenderer() func(string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Automatically detect light/dark background
	)
	if err != nil {
		return func(markdown string) (string, error) { return markdown, nil }
	}
	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}

// NewDerivationRenderer renders derivations as glamour tables.
func NewDerivationRenderer() func([]domain.Snapshot) (string, error) {
	render := NewRenderer()
	return func(path []domain.Snapshot) (string, error) {
		return render(DerivationMarkdown(path))
	}
}

// DerivationMarkdown lays out an accepting path as a markdown table, one row per tick.
func DerivationMarkdown(path []domain.Snapshot) string {
	var sb strings.Builder
	sb.WriteString("| tick | state | remaining input | stack |\n")
	sb.WriteString("|---:|---|---|---|\n")
	for i, s := range path {
		fmt.Fprintf(&sb, "| %d | %s | %s | %s |\n", i, escapeCell(string(s.State)), escapeCell(s.Word.String()), escapeCell(s.Stack.String()))
	}
	return sb.String()
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
