package observability_test

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aretw0/magazine"
	"github.com/aretw0/magazine/internal/runtime"
	"github.com/aretw0/magazine/internal/testutils"
	"github.com/aretw0/magazine/pkg/adapters/memory"
	"github.com/aretw0/magazine/pkg/domain"
	"github.com/aretw0/magazine/pkg/observability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Hooks(t *testing.T) {
	metrics := observability.NewMetrics()
	engine := runtime.NewEngine(testutils.BalancedDefinition(), runtime.WithLifecycleHooks(metrics.Hooks()))

	verdict, err := engine.AcceptsWord(context.Background(), domain.NewWord("a", "b"))
	require.NoError(t, err)
	require.True(t, verdict.Accepted())

	families, err := metrics.Registry().Gather()
	require.NoError(t, err)

	values := make(map[string]float64)
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			switch {
			case m.GetCounter() != nil:
				values[mf.GetName()] += m.GetCounter().GetValue()
			case m.GetHistogram() != nil:
				values[mf.GetName()] += float64(m.GetHistogram().GetSampleCount())
			}
		}
	}

	assert.Equal(t, float64(1), values["magazine_evaluations_total"])
	assert.Equal(t, float64(verdict.Ticks), values["magazine_ticks_total"])
	assert.Equal(t, float64(verdict.Ticks), values["magazine_frontier_size"])
	assert.Equal(t, float64(1), values["magazine_evaluation_duration_seconds"])
}

func TestMetrics_CountsCacheHits(t *testing.T) {
	metrics := observability.NewMetrics()
	eng, err := magazine.NewFromDefinition(testutils.BalancedDefinition(),
		magazine.WithCache(memory.NewCache()),
		magazine.WithLifecycleHooks(metrics.Hooks()),
	)
	require.NoError(t, err)

	for range 3 {
		_, err := eng.AcceptsString(context.Background(), "aabb")
		require.NoError(t, err)
	}

	rec := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body := rec.Body.String()
	assert.Contains(t, body, `magazine_evaluations_total{outcome="accepted"} 3`)
	assert.Contains(t, body, "magazine_cache_hits_total 2")
	assert.Contains(t, body, `magazine_evaluation_duration_seconds_count{outcome="accepted"} 1`)
}

func TestMetrics_Handler(t *testing.T) {
	metrics := observability.NewMetrics()
	hooks := metrics.Hooks()
	hooks.OnVerdict(context.Background(), &domain.VerdictEvent{Outcome: domain.OutcomeRejected})

	rec := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `magazine_evaluations_total{outcome="rejected"} 1`)
}

func TestLoggingHooks(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	engine := runtime.NewEngine(testutils.BalancedDefinition(), runtime.WithLifecycleHooks(observability.LoggingHooks(logger)))
	_, err := engine.AcceptsWord(context.Background(), domain.NewWord("a", "b"))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "msg=reset")
	assert.Contains(t, out, "msg=tick")
	assert.Contains(t, out, "outcome=accepted")
}
