package main

import (
	"github.com/aretw0/magazine/internal/cli"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp [path]",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Starts magazine as an MCP Server, exposing the accepts_word, get_definition and
get_graph tools and the magazine://definition resource.

Supported Transports:
- stdio (default): Uses Standard Input/Output. Ideal for local process integration.
- sse: Uses Server-Sent Events over HTTP. Ideal for remote agents or debuggers.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := cli.MCPOptions{RunOptions: runOptions(cmd, args)}
		opts.Transport, _ = cmd.Flags().GetString("transport")
		opts.Port, _ = cmd.Flags().GetInt("port")
		ctx, stop := signalContext(cmd)
		defer stop()
		return cli.ServeMCP(ctx, opts)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)

	mcpCmd.Flags().String("transport", "stdio", "Transport protocol to use: 'stdio' or 'sse'")
	mcpCmd.Flags().Int("port", 8080, "Port to listen on (only for SSE)")
}
