package compiler

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/aretw0/magazine/pkg/domain"
)

// Parse picks the format from the extension of name: .yaml/.yml, .json, anything else is text.
func Parse(name string, data []byte) (*domain.Definition, error) {
	base := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))

	var (
		def *domain.Definition
		err error
	)
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		def, err = ParseYAML(base, data)
	case ".json":
		def, err = ParseJSON(base, data)
	default:
		def, err = ParseText(base, data)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return def, nil
}

// ParseWord splits s into input symbols: on whitespace when s contains any, otherwise one
// symbol per character. The empty string is the empty word.
func ParseWord(s string) domain.Word {
	if strings.ContainsFunc(s, unicode.IsSpace) {
		return domain.NewWord(strings.Fields(s)...)
	}
	runes := []rune(s)
	w := make(domain.Word, len(runes))
	for i, r := range runes {
		w[i] = domain.Symbol(r)
	}
	return w
}
