package runner

import (
	"errors"

	"github.com/aretw0/magazine/pkg/domain"
)

// Report is the outcome of one request as shown to the user.
type Report struct {
	Word    string         `json:"word"`
	Symbols domain.Word    `json:"symbols"`
	Outcome domain.Outcome `json:"outcome,omitempty"`
	Ticks   int            `json:"ticks"`
	Limit   int            `json:"limit,omitempty"`
	// Derivation is only filled when tracing was requested.
	Derivation []domain.Snapshot `json:"derivation,omitempty"`
	// Unknown lists symbols of the word missing from the input alphabet.
	Unknown []domain.Symbol `json:"unknown_symbols,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// NewReport builds the report of an evaluation result.
func NewReport(req Request, verdict *domain.Verdict, err error) *Report {
	r := &Report{Word: req.Raw, Symbols: req.Word}
	if r.Symbols == nil {
		r.Symbols = domain.Word{}
	}

	var limitErr *domain.TickLimitError
	switch {
	case errors.As(err, &limitErr):
		verdict = limitErr.Verdict()
	case err != nil:
		r.Error = err.Error()
		return r
	}

	r.Outcome = verdict.Outcome
	r.Ticks = verdict.Ticks
	r.Limit = verdict.Limit
	if req.Trace {
		r.Derivation = verdict.Derivation
	}
	return r
}
