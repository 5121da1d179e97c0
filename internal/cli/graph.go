package cli

import (
	"context"
	"io"

	"github.com/aretw0/magazine/internal/presentation/graph"
)

// Graph writes the Mermaid flowchart of the selected definition. When word is set and
// accepted, its derivation is highlighted.
func Graph(ctx context.Context, opts RunOptions, word *string, out io.Writer) error {
	engine, err := createEngine(opts, createLogger(opts.Debug))
	if err != nil {
		return err
	}

	var overlay *graph.GraphOverlay
	if word != nil {
		verdict, err := engine.AcceptsString(ctx, *word)
		if err == nil && verdict.Accepted() {
			overlay = graph.OverlayFromDerivation(verdict.Derivation)
		}
	}

	_, err = io.WriteString(out, graph.GenerateMermaid(engine.Definition(), overlay))
	return err
}
