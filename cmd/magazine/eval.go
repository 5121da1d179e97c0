package main

import (
	"github.com/aretw0/magazine/internal/cli"
	"github.com/spf13/cobra"
)

var evalCmd = &cobra.Command{
	Use:   "eval word...",
	Short: "Check words given as arguments",
	Long: `Evaluates each argument as one word and prints its verdict. Pass "" for the empty word.
With --strict the command fails unless every word is accepted.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := runOptions(cmd, nil)
		opts.JSON, _ = cmd.Flags().GetBool("json")
		opts.Trace, _ = cmd.Flags().GetBool("trace")
		strict, _ := cmd.Flags().GetBool("strict")
		ctx, stop := signalContext(cmd)
		defer stop()
		return cli.Evaluate(ctx, opts, args, strict, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(evalCmd)

	evalCmd.Flags().Bool("json", false, "Print one JSON report per word")
	evalCmd.Flags().Bool("trace", false, "Print the derivation of accepted words")
	evalCmd.Flags().Bool("strict", false, "Exit with an error unless every word is accepted")
}
