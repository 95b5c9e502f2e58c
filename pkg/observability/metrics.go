package observability

import (
	"context"
	"errors"
	"strconv"

	"github.com/aretw0/dynurl/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels for dynurl_resolutions_total.
const (
	OutcomeResolved = "resolved"
	OutcomeMiss     = "miss"
	OutcomeError    = "error"
)

// Metrics holds the engine collectors.
type Metrics struct {
	resolutions *prometheus.CounterVec
	rewrites    *prometheus.CounterVec
	duration    prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		resolutions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dynurl_resolutions_total",
				Help: "Placeholder resolutions by strategy and outcome",
			},
			[]string{"strategy", "outcome"},
		),
		rewrites: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dynurl_rewrites_total",
				Help: "Rewrites of templates containing at least one placeholder",
			},
			[]string{"changed"},
		),
		duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "dynurl_rewrite_duration_seconds",
				Help:    "Duration of template rewrites",
				Buckets: prometheus.ExponentialBuckets(0.00001, 4, 8),
			},
		),
	}
	for _, c := range []prometheus.Collector{m.resolutions, m.rewrites, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Hooks returns lifecycle hooks that record into m.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnResolve: func(_ context.Context, e *domain.ResolveEvent) {
			m.resolutions.WithLabelValues(string(e.Strategy), Outcome(e)).Inc()
		},
		OnRewrite: func(_ context.Context, e *domain.RewriteEvent) {
			m.rewrites.WithLabelValues(strconv.FormatBool(e.Changed)).Inc()
			m.duration.Observe(e.Duration.Seconds())
		},
	}
}

// Outcome classifies a resolve event. Plain misses are not errors.
func Outcome(e *domain.ResolveEvent) string {
	switch {
	case e.Resolved:
		return OutcomeResolved
	case errors.Is(e.Err, domain.ErrResolverFailed),
		errors.Is(e.Err, domain.ErrAccessorFailed),
		errors.Is(e.Err, domain.ErrNamespaceUnavailable):
		return OutcomeError
	}
	return OutcomeMiss
}
