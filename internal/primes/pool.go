package primes

import (
	"fmt"
	"runtime/debug"

	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/primecalc/internal/errors"
	"github.com/agbru/primecalc/internal/logging"
)

// WorkerObserver is notified once per worker when the worker stops. It
// receives the number of candidates the worker tested and how many of them
// were prime. Implementations must be safe for concurrent use.
type WorkerObserver interface {
	WorkerDone(worker int, claimed, found uint64)
}

// Pool is a fixed set of workers that drain a Cursor into an Accumulator.
// A Pool carries no state between runs and may be reused.
type Pool struct {
	// Workers is the number of concurrent workers. Values below 1 use
	// DefaultWorkers.
	Workers int
	// Test decides primality. Nil uses IsPrime.
	Test func(uint64) bool
	// Observer, if set, is told about each worker's totals.
	Observer WorkerObserver
	// Logger receives worker lifecycle events at debug level. Nil discards.
	Logger logging.Logger
}

// Run spawns the workers and blocks until every one of them has returned.
// Runs cannot be cancelled once started. If a worker panics, the
// accumulator is poisoned, the remaining workers stop at their next claim,
// and Run returns an apperrors.WorkerError.
func (p *Pool) Run(cursor *Cursor, acc *Accumulator) error {
	workers := p.Workers
	if workers < 1 {
		workers = DefaultWorkers
	}
	test := p.Test
	if test == nil {
		test = IsPrime
	}
	logger := p.Logger
	if logger == nil {
		logger = logging.NewNopLogger()
	}

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		id := w
		g.Go(func() error {
			return p.work(id, cursor, acc, test, logger)
		})
	}
	return g.Wait()
}

// work is the loop executed by a single worker.
func (p *Pool) work(id int, cursor *Cursor, acc *Accumulator, test func(uint64) bool, logger logging.Logger) (err error) {
	var claimed, found uint64
	logger.Debug("worker started", logging.Int("worker", id))

	defer func() {
		if r := recover(); r != nil {
			acc.Poison()
			err = apperrors.WorkerError{
				Worker: id,
				Cause:  fmt.Errorf("panic: %v\n%s", r, debug.Stack()),
			}
			logger.Error("worker failed", err, logging.Int("worker", id))
		}
		acc.addClaimed(claimed)
		if p.Observer != nil {
			p.Observer.WorkerDone(id, claimed, found)
		}
		logger.Debug("worker finished",
			logging.Int("worker", id),
			logging.Uint64("claimed", claimed),
			logging.Uint64("found", found))
	}()

	for !acc.Poisoned() {
		n, ok := cursor.Claim()
		if !ok {
			return nil
		}
		claimed++
		if test(n) {
			found++
			acc.AddPrime(n)
			acc.RecordTop(n)
		}
	}
	return nil
}
