package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/magazine"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of magazine",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "magazine version %s\n", strings.TrimSpace(magazine.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
