package metrics

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/agbru/primecalc/internal/primes"
)

func TestRunMetrics_ObserverFeedsCounters(t *testing.T) {
	t.Parallel()
	m := NewRunMetrics()

	acc := primes.NewAccumulator(primes.RetainAll, primes.DefaultTopK)
	pool := &primes.Pool{Workers: 3, Observer: m.Observer("parallel")}
	if err := pool.Run(primes.NewCursor(1000), acc); err != nil {
		t.Fatal(err)
	}
	primes.RunSequential(1000, primes.SequentialOptions{Observer: m.Observer("sequential")})

	if got := counterValue(t, m.claimed.WithLabelValues("parallel")); got != 998 {
		t.Errorf("parallel claimed = %v, want 998", got)
	}
	if got := counterValue(t, m.found.WithLabelValues("sequential")); got != 168 {
		t.Errorf("sequential found = %v, want 168", got)
	}
	if got := counterValue(t, m.workers.WithLabelValues("parallel")); got != 3 {
		t.Errorf("parallel workers = %v, want 3", got)
	}
}

func TestRunMetrics_WriteText(t *testing.T) {
	t.Parallel()
	m := NewRunMetrics()
	m.ObserveRun("parallel", 25*time.Millisecond, primes.Result{TopPeak: 168, SumOverflow: true})

	var buf bytes.Buffer
	if err := m.WriteText(&buf); err != nil {
		t.Fatalf("WriteText: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"primecalc_run_duration_seconds_bucket",
		`primecalc_top_collection_size{mode="parallel"} 168`,
		`primecalc_sum_overflow{mode="parallel"} 1`,
		"go_goroutines",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("metrics output missing %q", want)
		}
	}
}

func TestNewRunMetrics_Independent(t *testing.T) {
	t.Parallel()
	// Two instances must not collide on registration.
	a, b := NewRunMetrics(), NewRunMetrics()
	if a.Registry() == b.Registry() {
		t.Error("each RunMetrics should own its registry")
	}
}

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		t.Fatalf("reading counter: %v", err)
	}
	return m.GetCounter().GetValue()
}
