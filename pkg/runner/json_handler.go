package runner

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aretw0/magazine/internal/compiler"
	"github.com/aretw0/magazine/pkg/domain"
)

// JSONHandler implements the IOHandler interface for structured JSON-Lines communication.
//
// Each input line is either a raw word, a JSON string, or an object:
//
//	{"word": "aabb", "max_ticks": 100, "trace": true}
//	{"symbols": ["aa", "bb"]}
//
// Each output line is one Report or one {"message": ...} object.
type JSONHandler struct {
	Reader  *bufio.Reader
	Writer  io.Writer
	Encoder *json.Encoder
}

// wordRequest is the object form of an input line.
type wordRequest struct {
	Word     *string  `json:"word"`
	Symbols  []string `json:"symbols"`
	MaxTicks *int     `json:"max_ticks"`
	Trace    bool     `json:"trace"`
}

// NewJSONHandler creates a handler for JSON IO.
func NewJSONHandler(r io.Reader, w io.Writer) *JSONHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	return &JSONHandler{
		Reader:  bufio.NewReader(r),
		Writer:  w,
		Encoder: json.NewEncoder(w),
	}
}

func (h *JSONHandler) Input(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	text, err := h.Reader.ReadString('\n')
	// A final line without a newline still counts.
	if err == io.EOF && text != "" {
		return strings.TrimSpace(text), nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

func (h *JSONHandler) Decode(line string) (Request, error) {
	if strings.HasPrefix(line, "{") {
		var req wordRequest
		if err := json.Unmarshal([]byte(line), &req); err != nil {
			return Request{}, fmt.Errorf("invalid request: %w", err)
		}
		switch {
		case req.Symbols != nil:
			return Request{
				Raw:      strings.Join(req.Symbols, " "),
				Word:     domain.NewWord(req.Symbols...),
				MaxTicks: req.MaxTicks,
				Trace:    req.Trace,
			}, nil
		case req.Word != nil:
			return Request{
				Raw:      *req.Word,
				Word:     compiler.ParseWord(*req.Word),
				MaxTicks: req.MaxTicks,
				Trace:    req.Trace,
			}, nil
		default:
			return Request{}, fmt.Errorf("invalid request: one of word or symbols is required")
		}
	}

	// Try to unquote if it's a JSON string, otherwise take the raw text.
	var val string
	if err := json.Unmarshal([]byte(line), &val); err == nil {
		line = val
	}
	return Request{Raw: line, Word: compiler.ParseWord(line)}, nil
}

func (h *JSONHandler) Output(ctx context.Context, report *Report) error {
	return h.Encoder.Encode(report)
}

func (h *JSONHandler) SystemOutput(ctx context.Context, msg string) error {
	return h.Encoder.Encode(map[string]string{"message": msg})
}
