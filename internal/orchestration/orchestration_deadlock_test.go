package orchestration

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/agbru/primecalc/internal/primes"
	"github.com/agbru/primecalc/internal/progress"
)

// mockRunner simulates various runner behaviors for deadlock testing.
type mockRunner struct {
	name     string
	behavior string // "instant", "slow", "error", "progress_flood"
	delay    time.Duration
}

func (m *mockRunner) Name() string { return m.name }
func (m *mockRunner) Mode() string { return m.behavior }
func (m *mockRunner) Workers() int { return 1 }

func (m *mockRunner) Run(ctx context.Context, limit uint64, report progress.ProgressCallback) (primes.Result, error) {
	switch m.behavior {
	case "slow":
		for i := uint64(0); i < 100; i++ {
			if err := ctx.Err(); err != nil {
				return primes.Result{}, err
			}
			report(i)
			time.Sleep(m.delay)
		}
	case "error":
		return primes.Result{}, errors.New("simulated error")
	case "progress_flood":
		for i := 0; i < 10000; i++ {
			report(uint64(i % 100))
		}
	}
	return primes.Result{Count: 1}, nil
}

// slowProgressReporter drains the channel with a delay per update.
type slowProgressReporter struct{}

func (slowProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, _ int, _ io.Writer) {
	defer wg.Done()
	for range progressChan {
		time.Sleep(10 * time.Microsecond)
	}
}

// TestOrchestrationNoDeadlock_MixedBehaviors verifies that ExecuteRuns
// completes without deadlocking under various runner behavior combinations.
func TestOrchestrationNoDeadlock_MixedBehaviors(t *testing.T) {
	testCases := []struct {
		name    string
		runners []Runner
	}{
		{
			name: "all_instant",
			runners: []Runner{
				&mockRunner{name: "r1", behavior: "instant"},
				&mockRunner{name: "r2", behavior: "instant"},
				&mockRunner{name: "r3", behavior: "instant"},
			},
		},
		{
			name: "mixed_instant_and_slow",
			runners: []Runner{
				&mockRunner{name: "fast", behavior: "instant"},
				&mockRunner{name: "slow", behavior: "slow", delay: time.Millisecond},
			},
		},
		{
			name: "error_stops_sequence",
			runners: []Runner{
				&mockRunner{name: "err", behavior: "error"},
				&mockRunner{name: "ok", behavior: "instant"},
			},
		},
		{
			name: "progress_flood",
			runners: []Runner{
				&mockRunner{name: "flood1", behavior: "progress_flood"},
				&mockRunner{name: "flood2", behavior: "progress_flood"},
			},
		},
		{
			name:    "no_runners",
			runners: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			done := make(chan struct{})
			go func() {
				defer close(done)
				ExecuteRuns(ctx, tc.runners, 100, slowProgressReporter{}, io.Discard)
			}()

			select {
			case <-done:
				// Success - no deadlock
			case <-time.After(10 * time.Second):
				t.Fatal("DEADLOCK: ExecuteRuns did not complete within timeout")
			}
		})
	}
}

// TestOrchestrationNoDeadlock_ContextCancellation verifies that cancelling
// the context during a run does not cause a deadlock and that the remaining
// runs are skipped.
func TestOrchestrationNoDeadlock_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	runners := []Runner{
		&mockRunner{name: "slow1", behavior: "slow", delay: 10 * time.Millisecond},
		&mockRunner{name: "slow2", behavior: "slow", delay: 10 * time.Millisecond},
	}

	done := make(chan []RunResult, 1)
	go func() {
		done <- ExecuteRuns(ctx, runners, 100, NullProgressReporter{}, io.Discard)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case results := <-done:
		if len(results) != 1 || !errors.Is(results[0].Err, context.Canceled) {
			t.Errorf("expected the first run to be cancelled and the second skipped, got %+v", results)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("DEADLOCK after context cancellation")
	}
}

// lateReporter starts draining only after a delay, like a display that is
// still initializing while the first run floods it.
type lateReporter struct {
	delay time.Duration
	mu    sync.Mutex
	done  []int
}

func (r *lateReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, _ int, _ io.Writer) {
	defer wg.Done()
	time.Sleep(r.delay)
	for u := range progressChan {
		if u.Done {
			r.mu.Lock()
			r.done = append(r.done, u.RunIndex)
			r.mu.Unlock()
		}
	}
}

// TestExecuteRuns_LateDisplayDropsPercentButKeepsDone checks that a flood of
// percent updates against an idle display neither blocks the runs nor
// crowds out the Done updates.
func TestExecuteRuns_LateDisplayDropsPercentButKeepsDone(t *testing.T) {
	runners := []Runner{
		&mockRunner{name: "flood1", behavior: "progress_flood"},
		&mockRunner{name: "flood2", behavior: "progress_flood"},
	}
	reporter := &lateReporter{delay: 200 * time.Millisecond}

	done := make(chan []RunResult, 1)
	start := time.Now()
	go func() { done <- ExecuteRuns(context.Background(), runners, 100, reporter, io.Discard) }()

	select {
	case results := <-done:
		if len(results) != 2 {
			t.Fatalf("got %d results, want 2", len(results))
		}
	case <-time.After(5 * time.Second):
		t.Fatal("runs blocked on a display that was not reading yet")
	}
	if time.Since(start) < reporter.delay {
		t.Error("ExecuteRuns returned before the display drained")
	}
	reporter.mu.Lock()
	defer reporter.mu.Unlock()
	if len(reporter.done) != 2 || reporter.done[0] != 0 || reporter.done[1] != 1 {
		t.Errorf("Done updates = %v, want [0 1]", reporter.done)
	}
}
