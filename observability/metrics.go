package observability

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/auth-platform/libs/go/domainkit/policy"
)

// Namespace prefixes every metric name.
const Namespace = "domainkit"

// Label values.
const (
	ResultBound   = "bound"
	ResultUnknown = "unknown"
	ResultOK      = "ok"
	ResultError   = "error"
)

// DefaultLatencyBuckets are the strategy duration buckets in seconds.
var DefaultLatencyBuckets = []float64{.00001, .0001, .0005, .001, .005, .01, .05, .1, .5, 1}

// MetricsObserver records dispatch events as Prometheus metrics.
type MetricsObserver struct {
	Resolutions *prometheus.CounterVec
	Executions  *prometheus.CounterVec
	Duration    *prometheus.HistogramVec
}

var _ policy.Observer = (*MetricsObserver)(nil)

// NewMetricsObserver creates the metrics and registers them with reg.
// It panics if they are already registered, like promauto.
func NewMetricsObserver(reg prometheus.Registerer) *MetricsObserver {
	factory := promauto.With(reg)
	return &MetricsObserver{
		Resolutions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "dispatch_resolutions_total",
				Help:      "Total number of discriminator resolutions",
			},
			[]string{"dispatcher", "result"},
		),
		Executions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "strategy_executions_total",
				Help:      "Total number of strategy executions",
			},
			[]string{"dispatcher", "strategy", "result"},
		),
		Duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Name:      "strategy_duration_seconds",
				Help:      "Strategy execution duration in seconds",
				Buckets:   DefaultLatencyBuckets,
			},
			[]string{"dispatcher", "strategy"},
		),
	}
}

// Resolved implements policy.Observer.
func (m *MetricsObserver) Resolved(dispatcher, _ string, err error) {
	result := ResultBound
	if err != nil {
		result = ResultUnknown
	}
	m.Resolutions.WithLabelValues(dispatcher, result).Inc()
}

// Executed implements policy.Observer.
func (m *MetricsObserver) Executed(_ context.Context, dispatcher, strategy string, _ time.Time, elapsed time.Duration, err error) {
	result := ResultOK
	if err != nil {
		result = ResultError
	}
	m.Executions.WithLabelValues(dispatcher, strategy, result).Inc()
	m.Duration.WithLabelValues(dispatcher, strategy).Observe(elapsed.Seconds())
}
