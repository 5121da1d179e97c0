package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/aretw0/magazine"
	"github.com/aretw0/magazine/pkg/adapters/mcp"
)

// ServeMCP runs the MCP server over stdio or SSE.
func ServeMCP(ctx context.Context, opts MCPOptions) error {
	// Logs always go to Stderr so they never corrupt JSON-RPC on Stdout.
	logger := createLogger(opts.Debug)

	engine, err := createEngine(opts.RunOptions, logger)
	if err != nil {
		return err
	}

	srv := mcp.NewServer(engine, magazine.Version,
		mcp.WithLogger(logger),
		mcp.WithMaxInputSize(opts.MaxInputSize),
	)

	switch opts.Transport {
	case "", "stdio":
		logger.Info("Starting magazine MCP server (stdio)")
		return srv.ServeStdio()
	case "sse":
		logger.Info("Starting magazine MCP server (SSE)", "port", opts.Port)
		if err := srv.ServeSSE(ctx, opts.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	default:
		return fmt.Errorf("unknown transport: %s (supported: stdio, sse)", opts.Transport)
	}
}
