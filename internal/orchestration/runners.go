package orchestration

import (
	"context"
	"fmt"

	"github.com/agbru/primecalc/internal/config"
	"github.com/agbru/primecalc/internal/logging"
	"github.com/agbru/primecalc/internal/primes"
	"github.com/agbru/primecalc/internal/progress"
)

// Runner performs one full enumeration of [2, limit).
type Runner interface {
	// Name is the display name of the run.
	Name() string
	// Mode is config.ModeParallel or config.ModeSequential.
	Mode() string
	// Workers is the number of concurrent workers the run uses.
	Workers() int
	// Run enumerates the range. report may be nil. The context is only
	// checked before the run starts; an enumeration is never interrupted.
	Run(ctx context.Context, limit uint64, report progress.ProgressCallback) (primes.Result, error)
}

// ParallelRunner drives a primes.Pool over a shared cursor and accumulator.
type ParallelRunner struct {
	NumWorkers    int
	TopK          int
	Policy        primes.Policy
	ProgressEvery uint64
	Observer      primes.WorkerObserver
	Logger        logging.Logger
	// Test overrides the primality test. Nil uses primes.IsPrime.
	Test func(uint64) bool
}

// Name returns the display name.
func (r *ParallelRunner) Name() string {
	return fmt.Sprintf("Parallel (%d workers)", r.Workers())
}

// Mode returns config.ModeParallel.
func (r *ParallelRunner) Mode() string { return config.ModeParallel }

// Workers returns the effective pool size.
func (r *ParallelRunner) Workers() int {
	if r.NumWorkers < 1 {
		return primes.DefaultWorkers
	}
	return r.NumWorkers
}

// Run executes the pool and returns the accumulator snapshot. A worker
// failure is returned as is and no partial result is exposed.
func (r *ParallelRunner) Run(ctx context.Context, limit uint64, report progress.ProgressCallback) (primes.Result, error) {
	if err := ctx.Err(); err != nil {
		return primes.Result{}, err
	}
	var opts []primes.CursorOption
	if report != nil {
		opts = append(opts, primes.WithProgress(report, r.ProgressEvery))
	}
	cursor := primes.NewCursor(limit, opts...)
	acc := primes.NewAccumulator(r.Policy, r.TopK)
	pool := &primes.Pool{
		Workers:  r.Workers(),
		Test:     r.Test,
		Observer: r.Observer,
		Logger:   r.Logger,
	}
	if err := pool.Run(cursor, acc); err != nil {
		return primes.Result{}, err
	}
	return acc.Snapshot()
}

// SequentialRunner is the single-goroutine baseline.
type SequentialRunner struct {
	TopK          int
	Policy        primes.Policy
	ProgressEvery uint64
	Observer      primes.WorkerObserver
	Test          func(uint64) bool
}

// Name returns the display name.
func (r *SequentialRunner) Name() string { return "Sequential" }

// Mode returns config.ModeSequential.
func (r *SequentialRunner) Mode() string { return config.ModeSequential }

// Workers always returns 1.
func (r *SequentialRunner) Workers() int { return 1 }

// Run enumerates the range on the calling goroutine.
func (r *SequentialRunner) Run(ctx context.Context, limit uint64, report progress.ProgressCallback) (primes.Result, error) {
	if err := ctx.Err(); err != nil {
		return primes.Result{}, err
	}
	return primes.RunSequential(limit, primes.SequentialOptions{
		TopK:          r.TopK,
		Policy:        r.Policy,
		Progress:      report,
		ProgressEvery: r.ProgressEvery,
		Test:          r.Test,
		Observer:      r.Observer,
	}), nil
}
