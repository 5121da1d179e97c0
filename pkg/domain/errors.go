package domain

import (
	"errors"
	"fmt"
)

// ErrTickLimitExceeded is matched by every *TickLimitError.
var ErrTickLimitExceeded = errors.New("tick limit exceeded")

// ErrInvalidDefinition is matched by definition validation and parse failures.
var ErrInvalidDefinition = errors.New("invalid definition")

// ErrDefinitionNotFound is returned when a loader has no definition for the requested ID.
var ErrDefinitionNotFound = errors.New("definition not found")

// ErrCacheMiss is returned by a VerdictCache when the key is not stored.
var ErrCacheMiss = errors.New("verdict not cached")

// TickLimitError reports that no accepting configuration was found within the budget.
// It does not mean the word is rejected.
type TickLimitError struct {
	Ticks int
	Limit int
}

func (e *TickLimitError) Error() string {
	return fmt.Sprintf("reached tick limit %d after %d ticks, could not accept word", e.Limit, e.Ticks)
}

// Is makes errors.Is(err, ErrTickLimitExceeded) hold.
func (e *TickLimitError) Is(target error) bool {
	return target == ErrTickLimitExceeded
}

// Verdict returns the verdict form of the error.
func (e *TickLimitError) Verdict() *Verdict {
	return &Verdict{Outcome: OutcomeTickLimitExceeded, Ticks: e.Ticks, Limit: e.Limit}
}

// ValidationError represents a single field validation failure.
type ValidationError struct {
	Key    string // Field name
	Reason string // Human-readable reason for failure
	Value  any    // The value that failed validation
}

func (e *ValidationError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("field %q: %s", e.Key, e.Reason)
	}
	return fmt.Sprintf("field %q: %s (got %v)", e.Key, e.Reason, e.Value)
}

// Is makes every validation failure an ErrInvalidDefinition.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidDefinition
}

// AggregateError represents multiple validation failures.
type AggregateError struct {
	Errors []error
}

func (e *AggregateError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	msg := fmt.Sprintf("%d validation errors:\n", len(e.Errors))
	for i, err := range e.Errors {
		msg += fmt.Sprintf("  %d. %s\n", i+1, err.Error())
	}
	return msg
}

// Is makes the aggregate an ErrInvalidDefinition.
func (e *AggregateError) Is(target error) bool {
	return target == ErrInvalidDefinition
}

// Unwrap exposes the individual failures to errors.As.
func (e *AggregateError) Unwrap() []error {
	return e.Errors
}

// ValidationErrors returns all validation errors if err is an AggregateError.
// Otherwise returns nil.
func ValidationErrors(err error) []error {
	var aggr *AggregateError
	if errors.As(err, &aggr) {
		return aggr.Errors
	}
	return nil
}
