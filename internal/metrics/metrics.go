package metrics

import (
	"context"

	"github.com/Code4GovTech/FAQ-Discord-Bot/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "faqbot"

// Metrics holds the navigation collectors.
type Metrics struct {
	Fetches       *prometheus.CounterVec
	FetchDuration *prometheus.HistogramVec
	Prompts       *prometheus.CounterVec
	Failures      *prometheus.CounterVec
}

// New registers the navigation collectors on reg.
// Pass prometheus.DefaultRegisterer to expose them on the default /metrics handler.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Fetches: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fetches_total",
			Help:      "The total number of decision API fetches, by outcome",
		}, []string{"outcome"}),

		FetchDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "fetch_duration_seconds",
			Help:      "The latency of decision API fetches.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"outcome"}),

		Prompts: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "prompts_total",
			Help:      "The total number of prompts posted, by kind",
		}, []string{"kind"}),

		Failures: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "failures_total",
			Help:      "The total number of failure notices posted, by error kind",
		}, []string{"error_kind"}),
	}
}

// Hooks returns lifecycle hooks that record navigation steps.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnFetch: func(_ context.Context, e *domain.StepEvent) {
			outcome := "ok"
			if e.Err != nil {
				outcome = domain.ErrorKind(e.Err)
			}
			m.Fetches.WithLabelValues(outcome).Inc()
			m.FetchDuration.WithLabelValues(outcome).Observe(e.Duration.Seconds())
		},
		OnDisplay: func(_ context.Context, e *domain.StepEvent) {
			m.Prompts.WithLabelValues(string(e.Kind)).Inc()
		},
		OnFailure: func(_ context.Context, e *domain.StepEvent) {
			m.Failures.WithLabelValues(domain.ErrorKind(e.Err)).Inc()
		},
	}
}
