package main

import (
	"github.com/aretw0/magazine/internal/cli"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph [path]",
	Short: "Export the automaton as a Mermaid diagram",
	Long: `Outputs a Mermaid flowchart (graph LR) with one edge per pair of states, labelled
"input, pop / push". With --word, the accepting path of that word is highlighted.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := runOptions(cmd, args)
		var word *string
		if cmd.Flags().Changed("word") {
			w, _ := cmd.Flags().GetString("word")
			word = &w
		}
		ctx, stop := signalContext(cmd)
		defer stop()
		return cli.Graph(ctx, opts, word, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().String("word", "", "Highlight the derivation of this word")
}
