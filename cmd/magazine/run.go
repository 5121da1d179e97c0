package main

import (
	"github.com/aretw0/magazine/internal/cli"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [path]",
	Short: "Check words interactively",
	Long: `Starts a read-eval-print loop: type a word, get its verdict.
A word with whitespace is split into symbols on the whitespace, otherwise every character is one
symbol. An empty line is the empty word. Type quit, exit or q (or press Ctrl+D) to leave.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := runOptions(cmd, args)
		opts.JSON, _ = cmd.Flags().GetBool("json")
		opts.Trace, _ = cmd.Flags().GetBool("trace")
		opts.Watch, _ = cmd.Flags().GetBool("watch")
		return cli.Execute(cmd.Context(), opts)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Bool("json", false, "Run in JSON mode (NDJSON input/output)")
	runCmd.Flags().Bool("trace", false, "Print the derivation of accepted words")
	runCmd.Flags().BoolP("watch", "w", false, "Reload the definition when it changes on disk")

	// Make 'run' the default if no command is provided.
	rootCmd.Args = runCmd.Args
	rootCmd.RunE = runCmd.RunE
	rootCmd.Flags().AddFlagSet(runCmd.Flags())
}
