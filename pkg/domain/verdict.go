package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
)

// Outcome is the result class of one word evaluation.
type Outcome string

const (
	// OutcomeAccepted: some configuration consumed the whole word and met the acceptance condition.
	OutcomeAccepted Outcome = "accepted"
	// OutcomeRejected: every branch dead-ended before acceptance (the frontier became empty).
	OutcomeRejected Outcome = "rejected"
	// OutcomeTickLimitExceeded: the budget ran out. Acceptance could not be determined.
	OutcomeTickLimitExceeded Outcome = "tick_limit_exceeded"
)

// Verdict describes how the evaluation of a word ended.
type Verdict struct {
	Outcome Outcome `json:"outcome"`
	// Ticks is the number of ticks performed.
	Ticks int `json:"ticks"`
	// Limit is the tick budget in force (0 means unbounded).
	Limit int `json:"limit,omitempty"`
	// Derivation lists the accepting path from the initial configuration. Only set when accepted.
	Derivation []Snapshot `json:"derivation,omitempty"`
}

// Accepted reports whether the word was accepted.
func (v *Verdict) Accepted() bool {
	return v != nil && v.Outcome == OutcomeAccepted
}

// Err converts a tick limit verdict back into its error form. Other outcomes return nil.
func (v *Verdict) Err() error {
	if v != nil && v.Outcome == OutcomeTickLimitExceeded {
		return &TickLimitError{Ticks: v.Ticks, Limit: v.Limit}
	}
	return nil
}

// VerdictKey identifies the evaluation of word against the automaton with the given digest
// under a tick budget. Equal keys always produce equal verdicts.
func VerdictKey(digest string, word Word, maxTicks int) string {
	var b strings.Builder
	b.WriteString(digest)
	b.WriteByte('|')
	b.WriteString(strconv.Itoa(maxTicks))
	for _, s := range word {
		b.WriteByte('|')
		b.WriteString(strconv.Itoa(len(s)))
		b.WriteByte(':')
		b.WriteString(string(s))
	}
	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}
