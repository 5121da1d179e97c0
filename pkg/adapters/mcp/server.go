package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/magazine/internal/compiler"
	"github.com/aretw0/magazine/internal/presentation/graph"
	"github.com/aretw0/magazine/internal/validator"
	"github.com/aretw0/magazine/pkg/domain"
	"github.com/aretw0/magazine/pkg/ports"
	"github.com/aretw0/magazine/pkg/runner"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const definitionURI = "magazine://definition"

// AcceptsArgs are the arguments of the accepts_word tool.
type AcceptsArgs struct {
	Word     string   `json:"word"`
	Symbols  []string `json:"symbols,omitempty"`
	MaxTicks *int     `json:"max_ticks,omitempty"`
	Trace    bool     `json:"trace,omitempty"`
}

// AcceptsResponse aligns with the OpenAPI schema and provides a unified structure across adapters.
type AcceptsResponse struct {
	Word           domain.Word       `json:"word" jsonschema_description:"The evaluated word, one entry per symbol"`
	Outcome        domain.Outcome    `json:"outcome" jsonschema_description:"accepted, rejected or tick_limit_exceeded"`
	Accepted       bool              `json:"accepted" jsonschema_description:"Whether the word is in the language"`
	Ticks          int               `json:"ticks" jsonschema_description:"Breadth-first expansion steps performed"`
	Limit          int               `json:"limit,omitempty" jsonschema_description:"Tick budget in force, 0 when unbounded"`
	Derivation     []domain.Snapshot `json:"derivation,omitempty" jsonschema_description:"Accepting path, when tracing"`
	UnknownSymbols []domain.Symbol   `json:"unknown_symbols,omitempty" jsonschema_description:"Symbols outside the input alphabet"`
}

// Server wraps an Evaluator and exposes it as an MCP Server.
type Server struct {
	evaluator    ports.Evaluator
	logger       *slog.Logger
	maxInputSize int
	mcpServer    *server.MCPServer
}

// Option configures the Server.
type Option func(*Server)

// WithLogger configures the server logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMaxInputSize bounds the size of a word in bytes.
func WithMaxInputSize(n int) Option {
	return func(s *Server) {
		s.maxInputSize = n
	}
}

// NewServer creates a new MCP Server instance.
func NewServer(ev ports.Evaluator, version string, opts ...Option) *Server {
	s := &Server{
		evaluator:    ev,
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		maxInputSize: runner.DefaultMaxInputSize,
		mcpServer:    server.NewMCPServer("magazine-mcp", strings.TrimSpace(version)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.registerTools()
	s.registerResources()
	return s
}

// MCPServer exposes the underlying server, mainly for in-process clients.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Info("Shutdown signal received, shutting down server")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	// TOOL: accepts_word
	acceptsTool := mcp.NewTool("accepts_word",
		mcp.WithDescription("Decide whether the automaton accepts a word. Whitespace separates multi-character symbols, otherwise each character is one symbol."),
		mcp.WithString("word", mcp.Description("The word to evaluate (empty for the empty word)")),
		mcp.WithArray("symbols", mcp.Description("Explicit symbol list, overrides word"), mcp.WithStringItems()),
		mcp.WithNumber("max_ticks", mcp.Description("Tick budget override, 0 or less means unbounded")),
		mcp.WithBoolean("trace", mcp.Description("Include the accepting derivation")),
		mcp.WithOutputSchema[AcceptsResponse](),
	)
	s.mcpServer.AddTool(acceptsTool, mcp.NewStructuredToolHandler(s.handleAcceptsWord))

	// TOOL: get_definition
	s.mcpServer.AddTool(mcp.NewTool("get_definition",
		mcp.WithDescription("Get the automaton definition: states, alphabets, acceptance mode and transitions."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		jsonBytes, err := json.Marshal(s.evaluator.Definition())
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("encode failed: %v", err)), nil
		}
		return mcp.NewToolResultText(string(jsonBytes)), nil
	})

	// TOOL: get_graph
	s.mcpServer.AddTool(mcp.NewTool("get_graph",
		mcp.WithDescription("Get a Mermaid flowchart of the automaton."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return mcp.NewToolResultText(graph.GenerateMermaid(s.evaluator.Definition(), nil)), nil
	})
}

func (s *Server) handleAcceptsWord(ctx context.Context, request mcp.CallToolRequest, args AcceptsArgs) (AcceptsResponse, error) {
	var word domain.Word
	if args.Symbols != nil {
		word = domain.NewWord(args.Symbols...)
	} else {
		clean, err := runner.SanitizeInput(args.Word, s.maxInputSize)
		if err != nil {
			s.logger.Warn("MCP accepts_word: input rejected", "err", err, "size", len(args.Word))
			return AcceptsResponse{}, fmt.Errorf("input rejected: %w", err)
		}
		word = compiler.ParseWord(clean)
	}

	var (
		verdict *domain.Verdict
		err     error
	)
	if args.MaxTicks != nil {
		verdict, err = s.evaluator.AcceptsWordWithin(ctx, word, *args.MaxTicks)
	} else {
		verdict, err = s.evaluator.AcceptsWord(ctx, word)
	}

	var limitErr *domain.TickLimitError
	switch {
	case errors.As(err, &limitErr):
		verdict = limitErr.Verdict()
	case err != nil:
		return AcceptsResponse{}, fmt.Errorf("evaluation failed: %w", err)
	}

	if word == nil {
		word = domain.Word{}
	}
	resp := AcceptsResponse{
		Word:           word,
		Outcome:        verdict.Outcome,
		Accepted:       verdict.Accepted(),
		Ticks:          verdict.Ticks,
		Limit:          verdict.Limit,
		UnknownSymbols: validator.CheckWord(s.evaluator.Definition(), word),
	}
	if args.Trace {
		resp.Derivation = verdict.Derivation
	}
	return resp, nil
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource(definitionURI, "Automaton Definition",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		jsonBytes, err := json.Marshal(s.evaluator.Definition())
		if err != nil {
			return nil, fmt.Errorf("failed to encode definition: %w", err)
		}

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      definitionURI,
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
