package main

import (
	"github.com/aretw0/magazine/internal/cli"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Check definitions for consistency",
	Long: `Parses every definition under the path and reports errors (undeclared states or symbols,
malformed transitions) and warnings (unreachable states, acceptance settings that have no effect).`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := runOptions(cmd, args)
		return cli.Validate(cmd.Context(), opts.Path, opts.DefinitionID, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
