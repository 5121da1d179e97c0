package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/aretw0/magazine"
	"github.com/aretw0/magazine/internal/cli"
	"github.com/aretw0/magazine/pkg/runner"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "magazine",
	Short: "Magazine is a nondeterministic pushdown automaton simulator",
	Long: `Magazine decides whether a pushdown ("magazine") automaton accepts a word by exploring
every nondeterministic branch breadth-first, under a tick budget.

Automata are read from a text, YAML or JSON file, or from a directory of Markdown/YAML/JSON
documents. Words can be checked interactively, in batch, over HTTP or through MCP.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// signalContext is cancelled on SIGINT or SIGTERM. The REPL does not use it: there an
// interrupt only stops the current evaluation.
func signalContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("path", ".", "Definition file or directory of definitions")
	rootCmd.PersistentFlags().String("definition", "", "Definition ID to use when the directory holds several")
	rootCmd.PersistentFlags().Bool("debug", false, "Log every tick to stderr")
	rootCmd.PersistentFlags().Int("max-ticks", magazine.DefaultMaxTicks, "Tick budget per word (0 for unbounded)")
	rootCmd.PersistentFlags().Int("parallelism", 1, "Workers expanding each tick's frontier")
	rootCmd.PersistentFlags().String("cache-dir", "", "Cache verdicts as files in this directory")
	rootCmd.PersistentFlags().Int("max-input", runner.DefaultMaxInputSize, "Maximum size of a word in bytes")
}

// runOptions reads the persistent flags. A positional argument overrides --path unless
// --path was given explicitly.
func runOptions(cmd *cobra.Command, args []string) cli.RunOptions {
	flags := cmd.Flags()
	path, _ := flags.GetString("path")
	if !flags.Changed("path") && len(args) > 0 {
		path = args[0]
	}
	id, _ := flags.GetString("definition")
	debug, _ := flags.GetBool("debug")
	maxTicks, _ := flags.GetInt("max-ticks")
	parallelism, _ := flags.GetInt("parallelism")
	cacheDir, _ := flags.GetString("cache-dir")
	maxInput, _ := flags.GetInt("max-input")

	return cli.RunOptions{
		Path:         path,
		DefinitionID: id,
		Debug:        debug,
		MaxTicks:     maxTicks,
		Parallelism:  parallelism,
		CacheDir:     cacheDir,
		MaxInputSize: maxInput,
	}
}
