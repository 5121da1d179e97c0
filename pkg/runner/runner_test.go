package runner_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/aretw0/magazine/internal/runtime"
	"github.com/aretw0/magazine/internal/testutils"
	"github.com/aretw0/magazine/pkg/domain"
	"github.com/aretw0/magazine/pkg/runner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// engineEvaluator evaluates every word on a fresh runtime engine.
type engineEvaluator struct {
	def      *domain.Definition
	maxTicks int
}

func (e *engineEvaluator) AcceptsWord(ctx context.Context, word domain.Word) (*domain.Verdict, error) {
	return e.AcceptsWordWithin(ctx, word, e.maxTicks)
}

func (e *engineEvaluator) AcceptsWordWithin(ctx context.Context, word domain.Word, maxTicks int) (*domain.Verdict, error) {
	return runtime.NewEngine(e.def, runtime.WithMaxTicks(maxTicks)).AcceptsWord(ctx, word)
}

func (e *engineEvaluator) Definition() *domain.Definition { return e.def }
func (e *engineEvaluator) MaxTicks() int                  { return e.maxTicks }

func balanced() *engineEvaluator {
	return &engineEvaluator{def: testutils.BalancedDefinition(), maxTicks: runtime.DefaultMaxTicks}
}

func TestRunner_TextSession(t *testing.T) {
	in := strings.NewReader("aabb\naab\n\n")
	var out bytes.Buffer

	r := runner.NewRunner(runner.WithInputHandler(runner.NewTextHandler(in, &out)))
	require.NoError(t, r.Run(context.Background(), balanced()))

	got := out.String()
	assert.Contains(t, got, "Insert word: ")
	assert.Contains(t, got, "Read word: aabb")
	assert.Contains(t, got, "Accepted word aabb after 5 ticks")
	assert.Contains(t, got, "Rejected word aab after 4 ticks")
	assert.Contains(t, got, "Read word: ε")
	assert.Contains(t, got, "Accepted word ε")
}

func TestRunner_QuitStopsLoop(t *testing.T) {
	in := strings.NewReader("ab\nquit\naabb\n")
	var out bytes.Buffer

	r := runner.NewRunner(runner.WithInputHandler(runner.NewTextHandler(in, &out)))
	require.NoError(t, r.Run(context.Background(), balanced()))

	assert.Contains(t, out.String(), "Accepted word ab")
	assert.NotContains(t, out.String(), "aabb")
}

func TestRunner_TickLimit(t *testing.T) {
	in := strings.NewReader("aaaabbbb\n")
	var out bytes.Buffer

	ev := balanced()
	ev.maxTicks = 3
	r := runner.NewRunner(runner.WithInputHandler(runner.NewTextHandler(in, &out)))
	require.NoError(t, r.Run(context.Background(), ev))

	assert.Contains(t, out.String(), "Word aaaabbbb reached tick limit (3 ticks)")
}

func TestRunner_TraceAndAlphabetCheck(t *testing.T) {
	in := strings.NewReader("ab\nac\n")
	var out bytes.Buffer

	h := runner.NewTextHandler(in, &out, runner.WithTrace(true))
	r := runner.NewRunner(runner.WithInputHandler(h), runner.WithAlphabetCheck(true))
	require.NoError(t, r.Run(context.Background(), balanced()))

	got := out.String()
	assert.Contains(t, got, "0. (q0, ab, Z)")
	assert.Contains(t, got, "3. (q1, ε, ε)")
	assert.Contains(t, got, "Warning: symbols outside the input alphabet: c")
	assert.Contains(t, got, "Rejected word ac")
}

func TestRunner_CustomRenderer(t *testing.T) {
	in := strings.NewReader("ab\n")
	var out bytes.Buffer

	h := runner.NewTextHandler(in, &out,
		runner.WithTrace(true),
		runner.WithTextHandlerRenderer(func(path []domain.Snapshot) (string, error) {
			return "steps=" + string(rune('0'+len(path))), nil
		}),
	)
	r := runner.NewRunner(runner.WithInputHandler(h))
	require.NoError(t, r.Run(context.Background(), balanced()))

	assert.Contains(t, out.String(), "steps=4")
}

func TestRunner_OversizedInputIsSkipped(t *testing.T) {
	in := strings.NewReader(strings.Repeat("a", 20) + "\nab\n")
	var out bytes.Buffer

	r := runner.NewRunner(
		runner.WithInputHandler(runner.NewTextHandler(in, &out)),
		runner.WithMaxInputSize(10),
	)
	require.NoError(t, r.Run(context.Background(), balanced()))

	assert.Contains(t, out.String(), "input exceeds maximum allowed size")
	assert.Contains(t, out.String(), "Accepted word ab")
}

func TestRunner_JSONSession(t *testing.T) {
	in := strings.NewReader(strings.Join([]string{
		`aabb`,
		`"ba"`,
		`{"word": "aaaabbbb", "max_ticks": 2}`,
		`{"symbols": ["a", "b"], "trace": true}`,
		`{"max_ticks": 2}`,
	}, "\n"))
	var out bytes.Buffer

	r := runner.NewRunner(runner.WithInputHandler(runner.NewJSONHandler(in, &out)))
	require.NoError(t, r.Run(context.Background(), balanced()))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 5)

	var first runner.Report
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, domain.OutcomeAccepted, first.Outcome)
	assert.Equal(t, domain.NewWord("a", "a", "b", "b"), first.Symbols)
	assert.Empty(t, first.Derivation)

	var second runner.Report
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	assert.Equal(t, domain.OutcomeRejected, second.Outcome)

	var third runner.Report
	require.NoError(t, json.Unmarshal([]byte(lines[2]), &third))
	assert.Equal(t, domain.OutcomeTickLimitExceeded, third.Outcome)
	assert.Equal(t, 2, third.Limit)

	var fourth runner.Report
	require.NoError(t, json.Unmarshal([]byte(lines[3]), &fourth))
	assert.Equal(t, domain.OutcomeAccepted, fourth.Outcome)
	assert.Len(t, fourth.Derivation, 4)

	var msg map[string]string
	require.NoError(t, json.Unmarshal([]byte(lines[4]), &msg))
	assert.Contains(t, msg["message"], "one of word or symbols is required")
}

func TestRunner_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := runner.NewRunner(runner.WithInputHandler(runner.NewTextHandler(strings.NewReader("ab\n"), &bytes.Buffer{})))
	err := r.Run(ctx, balanced())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunner_RequiresEvaluator(t *testing.T) {
	r := runner.NewRunner(runner.WithInputHandler(runner.NewTextHandler(strings.NewReader(""), &bytes.Buffer{})))
	assert.Error(t, r.Run(context.Background(), nil))
}
