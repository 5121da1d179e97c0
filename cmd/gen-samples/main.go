// Command gen-samples writes sample automata as Markdown documents into a Loam repository.
// The output directory can be used directly with "magazine --path".
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aretw0/loam"
	"github.com/aretw0/loam/pkg/core"
)

type sample struct {
	id       string
	body     string
	metadata core.Metadata
}

var samples = []sample{
	{
		id:   "balanced",
		body: "# Balanced\n\nAccepts a^n b^n (n >= 0) by emptying the stack.\n",
		metadata: core.Metadata{
			"states":               []string{"q0", "q1"},
			"alphabet":             []string{"a", "b"},
			"stack_alphabet":       []string{"Z", "A"},
			"initial_state":        "q0",
			"initial_stack_symbol": "Z",
			"acceptance":           "empty_stack",
			"transitions": []string{
				"q0 a Z q0 ZA",
				"q0 a A q0 AA",
				"q0 b A q1 -",
				"q1 b A q1 -",
				"q1 - Z q1 -",
				"q0 - Z q0 -",
			},
		},
	},
	{
		id:   "palindromes",
		body: "# Palindromes\n\nAccepts palindromes over {a, b}. The middle of the word is guessed.\n",
		metadata: core.Metadata{
			"states":               []string{"push", "pop", "done"},
			"alphabet":             []string{"a", "b"},
			"stack_alphabet":       []string{"Z", "A", "B"},
			"initial_state":        "push",
			"initial_stack_symbol": "Z",
			"accepted_states":      []string{"done"},
			"acceptance":           "final_state",
			"transitions": []string{
				"push a - push A",
				"push b - push B",
				"push a - pop -",
				"push b - pop -",
				"push - - pop -",
				"pop a A pop -",
				"pop b B pop -",
				"pop - Z done Z",
			},
		},
	},
}

func main() {
	targetDir := "examples/automata"
	if len(os.Args) > 1 {
		targetDir = os.Args[1]
	}

	fmt.Printf("Generating sample automata in: %s\n", targetDir)
	if err := generate(context.Background(), targetDir); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Done.")
}

func generate(ctx context.Context, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	// No versioning: plain file generation.
	repo, err := loam.Init(dir, loam.WithVersioning(false))
	if err != nil {
		return fmt.Errorf("failed to init loam repository: %w", err)
	}

	for _, s := range samples {
		err := repo.Save(ctx, core.Document{
			ID:       s.id + ".md",
			Content:  s.body,
			Metadata: s.metadata,
		})
		if err != nil {
			return fmt.Errorf("failed to save %s: %w", s.id, err)
		}
	}
	return nil
}
