package metrics

import (
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/common/expfmt"

	"github.com/agbru/primecalc/internal/primes"
)

// RunMetrics owns a private Prometheus registry describing enumeration runs.
// A private registry keeps repeated constructions (tests, multiple runs in
// one process) free of duplicate registration panics.
type RunMetrics struct {
	registry *prometheus.Registry

	claimed  *prometheus.CounterVec
	found    *prometheus.CounterVec
	workers  *prometheus.CounterVec
	duration *prometheus.HistogramVec
	topPeak  *prometheus.GaugeVec
	overflow *prometheus.GaugeVec
}

// NewRunMetrics creates the metric vectors and registers them together with
// the Go runtime collector.
func NewRunMetrics() *RunMetrics {
	m := &RunMetrics{
		registry: prometheus.NewRegistry(),
		claimed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "primecalc_candidates_claimed_total",
			Help: "Candidates tested for primality.",
		}, []string{"mode"}),
		found: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "primecalc_primes_found_total",
			Help: "Primes found.",
		}, []string{"mode"}),
		workers: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "primecalc_workers_finished_total",
			Help: "Workers that ran to completion or failure.",
		}, []string{"mode"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "primecalc_run_duration_seconds",
			Help:    "Wall-clock duration of an enumeration run.",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
		}, []string{"mode"}),
		topPeak: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "primecalc_top_collection_size",
			Help: "Largest size the top-K collection reached during the run.",
		}, []string{"mode"}),
		overflow: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "primecalc_sum_overflow",
			Help: "1 if the prime sum wrapped around 64 bits.",
		}, []string{"mode"}),
	}
	m.registry.MustRegister(
		m.claimed, m.found, m.workers, m.duration, m.topPeak, m.overflow,
		collectors.NewGoCollector(),
	)
	return m
}

// Registry exposes the underlying registry.
func (m *RunMetrics) Registry() *prometheus.Registry {
	return m.registry
}

// Observer returns a primes.WorkerObserver feeding the counters of mode.
func (m *RunMetrics) Observer(mode string) primes.WorkerObserver {
	return workerObserver{
		claimed: m.claimed.WithLabelValues(mode),
		found:   m.found.WithLabelValues(mode),
		workers: m.workers.WithLabelValues(mode),
	}
}

// ObserveRun records the outcome of a finished run.
func (m *RunMetrics) ObserveRun(mode string, d time.Duration, res primes.Result) {
	m.duration.WithLabelValues(mode).Observe(d.Seconds())
	m.topPeak.WithLabelValues(mode).Set(float64(res.TopPeak))
	v := 0.0
	if res.SumOverflow {
		v = 1
	}
	m.overflow.WithLabelValues(mode).Set(v)
}

// WriteText writes every gathered family in the Prometheus text format.
func (m *RunMetrics) WriteText(w io.Writer) error {
	families, err := m.registry.Gather()
	if err != nil {
		return fmt.Errorf("gathering metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("encoding %s: %w", mf.GetName(), err)
		}
	}
	return nil
}

type workerObserver struct {
	claimed prometheus.Counter
	found   prometheus.Counter
	workers prometheus.Counter
}

func (o workerObserver) WorkerDone(_ int, claimed, found uint64) {
	o.claimed.Add(float64(claimed))
	o.found.Add(float64(found))
	o.workers.Inc()
}
