package observability

import (
	"context"
	"net/http"

	"github.com/aretw0/magazine/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics records evaluation counters and histograms.
type Metrics struct {
	registry    *prometheus.Registry
	evaluations *prometheus.CounterVec
	ticks       prometheus.Counter
	frontier    prometheus.Histogram
	duration    *prometheus.HistogramVec
	cacheHits   prometheus.Counter
}

// NewMetrics creates the collectors and registers them on a dedicated registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		evaluations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "magazine_evaluations_total",
				Help: "Total number of finished evaluations by outcome",
			},
			[]string{"outcome"},
		),
		ticks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "magazine_ticks_total",
			Help: "Total number of ticks performed",
		}),
		frontier: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "magazine_frontier_size",
			Help:    "Number of configurations in the frontier after each tick",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		}),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "magazine_evaluation_duration_seconds",
				Help: "Duration of evaluations by outcome",
			},
			[]string{"outcome"},
		),
		cacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "magazine_cache_hits_total",
			Help: "Total number of evaluations served from the verdict cache",
		}),
	}
	m.registry.MustRegister(m.evaluations, m.ticks, m.frontier, m.duration, m.cacheHits)
	return m
}

// Hooks returns lifecycle hooks that feed the collectors.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnTick: func(_ context.Context, e *domain.TickEvent) {
			m.ticks.Inc()
			m.frontier.Observe(float64(len(e.Frontier)))
		},
		OnVerdict: func(_ context.Context, e *domain.VerdictEvent) {
			m.evaluations.WithLabelValues(string(e.Outcome)).Inc()
			if e.Cached {
				m.cacheHits.Inc()
				return
			}
			m.duration.WithLabelValues(string(e.Outcome)).Observe(e.Duration.Seconds())
		},
	}
}

// Registry exposes the underlying registry, e.g. for custom collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the metrics in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
