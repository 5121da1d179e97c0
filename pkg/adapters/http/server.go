package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aretw0/magazine/internal/compiler"
	"github.com/aretw0/magazine/internal/presentation/graph"
	"github.com/aretw0/magazine/internal/validator"
	"github.com/aretw0/magazine/pkg/domain"
	"github.com/aretw0/magazine/pkg/ports"
	"github.com/aretw0/magazine/pkg/runner"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/oapi-codegen/runtime"
)

// AcceptsRequest is the body of POST /accepts. Symbols wins over Word when both are set.
type AcceptsRequest struct {
	Word     *string  `json:"word,omitempty"`
	Symbols  []string `json:"symbols,omitempty"`
	MaxTicks *int     `json:"max_ticks,omitempty"`
	Trace    bool     `json:"trace,omitempty"`
}

// AcceptsResponse is the verdict for one word.
type AcceptsResponse struct {
	Word           domain.Word       `json:"word"`
	Outcome        domain.Outcome    `json:"outcome"`
	Accepted       bool              `json:"accepted"`
	Ticks          int               `json:"ticks"`
	Limit          int               `json:"limit,omitempty"`
	Derivation     []domain.Snapshot `json:"derivation,omitempty"`
	UnknownSymbols []domain.Symbol   `json:"unknown_symbols,omitempty"`
}

// Server exposes an Evaluator over HTTP.
type Server struct {
	Evaluator    ports.Evaluator
	Logger       *slog.Logger
	Version      string
	MaxInputSize int
	Metrics      http.Handler
}

// Option configures the Server.
type Option func(*Server)

// WithLogger configures the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.Logger = logger
		}
	}
}

// WithVersion sets the version reported by /info.
func WithVersion(v string) Option {
	return func(s *Server) {
		s.Version = strings.TrimSpace(v)
	}
}

// WithMaxInputSize bounds the size of a word in bytes.
func WithMaxInputSize(n int) Option {
	return func(s *Server) {
		s.MaxInputSize = n
	}
}

// WithMetrics mounts a metrics handler at /metrics.
func WithMetrics(h http.Handler) Option {
	return func(s *Server) {
		s.Metrics = h
	}
}

// NewHandler creates a new HTTP handler for the evaluator.
func NewHandler(ev ports.Evaluator, opts ...Option) (http.Handler, error) {
	if ev == nil {
		return nil, errors.New("http: evaluator is required")
	}
	s := &Server{
		Evaluator:    ev,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		Version:      "dev",
		MaxInputSize: runner.DefaultMaxInputSize,
	}
	for _, opt := range opts {
		opt(s)
	}

	doc, err := GetSwagger()
	if err != nil {
		return nil, err
	}
	validate, err := requestValidator(doc)
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(enableCORS)

	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/yaml")
		_, _ = w.Write(RawSpec())
	})
	r.Get("/health", s.GetHealth)
	r.Get("/info", s.GetInfo)
	if s.Metrics != nil {
		r.Handle("/metrics", s.Metrics)
	}

	r.Group(func(r chi.Router) {
		r.Use(validate)
		r.Get("/accepts", s.AcceptsWordQuery)
		r.Post("/accepts", s.AcceptsWord)
		r.Get("/definition", s.GetDefinition)
		r.Get("/graph", s.GetGraph)
	})

	return r, nil
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// AcceptsWord handles the POST /accepts request.
func (s *Server) AcceptsWord(w http.ResponseWriter, r *http.Request) {
	var body AcceptsRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.Logger.Warn("AcceptsWord: invalid request body", "err", err)
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	var word domain.Word
	switch {
	case body.Symbols != nil:
		for _, sym := range body.Symbols {
			clean, err := runner.SanitizeInput(sym, s.MaxInputSize)
			if err != nil {
				writeError(w, http.StatusBadRequest, fmt.Errorf("invalid symbol: %w", err))
				return
			}
			// Symbols are used verbatim: a control character is an error, not stripped.
			if clean != sym {
				writeError(w, http.StatusBadRequest, fmt.Errorf("invalid symbol %q: contains control characters", sym))
				return
			}
		}
		word = domain.NewWord(body.Symbols...)
	case body.Word != nil:
		var err error
		if word, err = s.parseWord(*body.Word); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
	default:
		writeError(w, http.StatusBadRequest, errors.New("one of word or symbols is required"))
		return
	}

	s.respond(w, r, word, body.MaxTicks, body.Trace)
}

// AcceptsWordQuery handles the GET /accepts request.
func (s *Server) AcceptsWordQuery(w http.ResponseWriter, r *http.Request) {
	var (
		raw      string
		maxTicks *int
		trace    *bool
	)
	q := r.URL.Query()
	if err := runtime.BindQueryParameter("form", true, true, "word", q, &raw); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := runtime.BindQueryParameter("form", true, false, "max_ticks", q, &maxTicks); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := runtime.BindQueryParameter("form", true, false, "trace", q, &trace); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	word, err := s.parseWord(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	s.respond(w, r, word, maxTicks, trace != nil && *trace)
}

func (s *Server) parseWord(raw string) (domain.Word, error) {
	clean, err := runner.SanitizeInput(raw, s.MaxInputSize)
	if err != nil {
		s.Logger.Warn("word rejected", "err", err, "size", len(raw))
		return nil, fmt.Errorf("invalid word: %w", err)
	}
	return compiler.ParseWord(clean), nil
}

func (s *Server) evaluate(r *http.Request, word domain.Word, maxTicks *int) (*domain.Verdict, error) {
	if maxTicks != nil {
		return s.Evaluator.AcceptsWordWithin(r.Context(), word, *maxTicks)
	}
	return s.Evaluator.AcceptsWord(r.Context(), word)
}

func (s *Server) respond(w http.ResponseWriter, r *http.Request, word domain.Word, maxTicks *int, trace bool) {
	verdict, err := s.evaluate(r, word, maxTicks)

	status := http.StatusOK
	var limitErr *domain.TickLimitError
	switch {
	case errors.As(err, &limitErr):
		verdict = limitErr.Verdict()
		status = http.StatusUnprocessableEntity
	case err != nil:
		s.Logger.Error("evaluation failed", "err", err)
		writeError(w, http.StatusInternalServerError, err)
		return
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
		UnknownSymbols: validator.CheckWord(s.Evaluator.Definition(), word),
	}
	if trace {
		resp.Derivation = verdict.Derivation
	}

	s.Logger.Debug("word evaluated", "word", word.String(), "outcome", verdict.Outcome, "ticks", verdict.Ticks)
	writeJSON(w, status, resp)
}

// GetDefinition handles the GET /definition request.
func (s *Server) GetDefinition(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Evaluator.Definition())
}

// GetGraph handles the GET /graph request.
func (s *Server) GetGraph(w http.ResponseWriter, r *http.Request) {
	var overlay *graph.GraphOverlay
	if q := r.URL.Query(); q.Has("word") {
		word, err := s.parseWord(q.Get("word"))
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		if verdict, err := s.Evaluator.AcceptsWord(r.Context(), word); err == nil && verdict.Accepted() {
			overlay = graph.OverlayFromDerivation(verdict.Derivation)
		}
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, graph.GenerateMermaid(s.Evaluator.Definition(), overlay))
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	apiVersion := "unknown"
	if swagger, err := GetSwagger(); err == nil && swagger.Info != nil {
		apiVersion = swagger.Info.Version
	}

	def := s.Evaluator.Definition()
	writeJSON(w, http.StatusOK, map[string]string{
		"app":         "magazine-http",
		"version":     s.Version,
		"api_version": apiVersion,
		"definition":  def.Name,
		"acceptance":  def.AcceptanceMode(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
