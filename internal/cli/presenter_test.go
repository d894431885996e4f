package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/agbru/primecalc/internal/config"
	apperrors "github.com/agbru/primecalc/internal/errors"
	"github.com/agbru/primecalc/internal/metrics"
	"github.com/agbru/primecalc/internal/orchestration"
	"github.com/agbru/primecalc/internal/primes"
)

var top30 = []uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}

func TestFormatResultLine(t *testing.T) {
	t.Parallel()
	res := primes.Result{Count: 10, Sum: 129, Top: top30}
	tests := []struct {
		name string
		mode string
		want string
	}{
		{"parallel reports time first", config.ModeParallel, "42, 10, 129"},
		{"sequential reports sum first", config.ModeSequential, "129, 10, 42"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := FormatResultLine(orchestration.RunResult{Mode: tt.mode, Result: res, Duration: 42 * time.Millisecond})
			if got != tt.want {
				t.Errorf("FormatResultLine() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPresentResult(t *testing.T) {
	t.Parallel()
	run := orchestration.RunResult{
		Name: "Parallel (8 workers)", Mode: config.ModeParallel, Duration: 3 * time.Millisecond,
		Result: primes.Result{Count: 10, Sum: 129, Top: top30, TopPeak: 10},
	}

	t.Run("quiet", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		CLIResultPresenter{}.PresentResult(run, orchestration.PresentationOptions{Limit: 30, Quiet: true}, &buf)
		want := "3, 10, 129\n[2, 3, 5, 7, 11, 13, 17, 19, 23, 29]\n"
		if buf.String() != want {
			t.Errorf("output = %q, want %q", buf.String(), want)
		}
	})

	t.Run("verbose", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		CLIResultPresenter{}.PresentResult(run, orchestration.PresentationOptions{Limit: 30, Verbose: true}, &buf)
		if !strings.Contains(buf.String(), "10 primes, sum 129") {
			t.Errorf("missing detail line in %q", buf.String())
		}
	})

	t.Run("overflow warning", func(t *testing.T) {
		t.Parallel()
		overflowed := run
		overflowed.Result.SumOverflow = true
		var buf bytes.Buffer
		CLIResultPresenter{}.PresentResult(overflowed, orchestration.PresentationOptions{Limit: 30}, &buf)
		if !strings.Contains(buf.String(), "exceeds 64 bits") {
			t.Errorf("missing overflow warning in %q", buf.String())
		}
	})
}

func TestPresentComparisonTable(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	CLIResultPresenter{}.PresentComparisonTable([]orchestration.RunResult{
		{Name: "Parallel (8 workers)", Duration: 10 * time.Millisecond, Result: primes.Result{Count: 1229}},
		{Name: "Sequential", Duration: 40 * time.Millisecond, Result: primes.Result{Count: 1229}},
	}, &buf)
	out := buf.String()
	for _, want := range []string{"Comparison Summary", "Parallel (8 workers)", "Sequential", "1,229", "4.00x"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}

func TestHandleError(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	code := CLIResultPresenter{}.HandleError(apperrors.WorkerError{Worker: 2, Cause: errors.New("boom")}, time.Second, &buf)
	if code != apperrors.ExitErrorWorker {
		t.Errorf("exit code = %d", code)
	}
	if !strings.Contains(buf.String(), "worker 2") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestDisplayMemoryStats(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	DisplayMemoryStats(metrics.MemoryDelta{Allocated: 2048, NumGC: 3, PauseTotalNs: 1_500_000, HeapAfter: 1024}, &buf)
	for _, want := range []string{"Memory Stats", "GC cycles:       3", "1.50ms"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("missing %q in %q", want, buf.String())
		}
	}
}

func TestPrintExecution(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	cfg := config.Default()
	PrintExecutionConfig(cfg, &buf)
	PrintExecutionMode(orchestration.BuildRunners(cfg, nil, nil), &buf)
	for _, want := range []string{"10,000,000", "Parallel run followed by the sequential baseline", "Starting Execution"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("missing %q in %q", want, buf.String())
		}
	}
}
