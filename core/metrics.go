package core

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/projectparaiba/paraiba/schema"
)

// Metric names.
const (
	MetricCandidatesTotal      = "paraiba_candidates_total"
	MetricBatchDurationSeconds = "paraiba_batch_duration_seconds"
	MetricLastBatchTopScore    = "paraiba_last_batch_top_score"
)

// Status label values.
const (
	StatusScored = "scored"
	StatusFailed = "failed"
)

// Metrics holds the Prometheus collectors for batch scoring runs.
// All operations are thread-safe.
type Metrics struct {
	registry   *prometheus.Registry
	candidates *prometheus.CounterVec
	duration   prometheus.Histogram
	topScore   prometheus.Gauge
}

// NewMetrics creates a Metrics instance registered on its own registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		candidates: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricCandidatesTotal,
				Help: "Total number of candidates processed by status",
			},
			[]string{"status"},
		),
		duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    MetricBatchDurationSeconds,
				Help:    "Histogram of batch scoring duration in seconds",
				Buckets: []float64{0.0001, 0.001, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0},
			},
		),
		topScore: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: MetricLastBatchTopScore,
				Help: "Composite score of the highest ranked candidate in the last batch",
			},
		),
	}
	m.registry.MustRegister(m.Collectors()...)
	return m
}

// ObserveBatch records one ranked batch and how long it took.
func (m *Metrics) ObserveBatch(results []schema.RankedCandidate, elapsed time.Duration) {
	for _, r := range results {
		if r.Result.OK() {
			m.candidates.WithLabelValues(StatusScored).Inc()
		} else {
			m.candidates.WithLabelValues(StatusFailed).Inc()
		}
	}
	m.duration.Observe(elapsed.Seconds())
	if len(results) > 0 {
		m.topScore.Set(results[0].Result.Score)
	}
}

// Count returns the counter for a status label.
func (m *Metrics) Count(status string) prometheus.Counter {
	return m.candidates.WithLabelValues(status)
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// WriteFile writes all metrics in the node_exporter textfile format.
func (m *Metrics) WriteFile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}

// Collectors returns all Prometheus collectors.
func (m *Metrics) Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.candidates,
		m.duration,
		m.topScore,
	}
}
