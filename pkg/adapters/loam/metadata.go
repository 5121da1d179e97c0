package loam

import "github.com/aretw0/magazine/internal/compiler"

// DefinitionMetadata is the frontmatter (or whole JSON/YAML document) of a stored automaton.
// The Markdown body, if any, is free-form documentation and is ignored.
type DefinitionMetadata struct {
	// ID overrides the file-derived ID.
	ID string `json:"id,omitempty" mapstructure:"id"`

	compiler.Document `json:",inline" yaml:",inline" mapstructure:",squash"`
}
