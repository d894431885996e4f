package primes

import (
	"errors"
	"math/bits"
	"sync"
	"sync/atomic"
)

// ErrPoisoned is returned when accumulator state is read after a worker
// failed while the run was in progress. Partial state is never exposed.
var ErrPoisoned = errors.New("primes: accumulator poisoned by a failed worker")

// Accumulator holds the running sum, the running count and the top-K
// collection shared by the workers of one run. Each cell has its own lock so
// updates to different cells do not serialize against each other.
type Accumulator struct {
	sumMu    sync.Mutex
	sum      uint64
	overflow bool

	countMu sync.Mutex
	count   uint64

	topMu sync.Mutex
	top   *topSet

	claimed  atomic.Uint64
	poisoned atomic.Bool
}

// NewAccumulator returns an empty accumulator whose top collection keeps k
// values under the given policy.
func NewAccumulator(policy Policy, k int) *Accumulator {
	return &Accumulator{top: newTopSet(policy, k)}
}

// AddPrime counts p and adds it to the sum. Count and sum are updated under
// their own locks, one after the other.
func (a *Accumulator) AddPrime(p uint64) {
	a.locked(&a.countMu, func() {
		a.count++
	})
	a.locked(&a.sumMu, func() {
		var carry uint64
		a.sum, carry = bits.Add64(a.sum, p, 0)
		if carry != 0 {
			a.overflow = true
		}
	})
}

// RecordTop offers p to the top-K collection.
func (a *Accumulator) RecordTop(p uint64) {
	a.locked(&a.topMu, func() {
		a.top.add(p)
	})
}

// addClaimed records n tested candidates. Workers report in bulk when they
// finish so the hot loop stays free of shared writes.
func (a *Accumulator) addClaimed(n uint64) {
	a.claimed.Add(n)
}

// Poison marks the accumulator as unusable. It is called when a worker fails.
func (a *Accumulator) Poison() {
	a.poisoned.Store(true)
}

// Poisoned reports whether a worker failed during the run.
func (a *Accumulator) Poisoned() bool {
	return a.poisoned.Load()
}

// Snapshot returns the final result. It must only be called once every
// worker of the run has returned. The top collection is finalized according
// to its policy.
func (a *Accumulator) Snapshot() (Result, error) {
	if a.Poisoned() {
		return Result{}, ErrPoisoned
	}
	var res Result
	a.locked(&a.sumMu, func() {
		res.Sum = a.sum
		res.SumOverflow = a.overflow
	})
	a.locked(&a.countMu, func() {
		res.Count = a.count
	})
	a.locked(&a.topMu, func() {
		res.Top = a.top.final()
		res.TopPeak = a.top.peak
	})
	res.Claimed = a.claimed.Load()
	return res, nil
}

// locked runs fn while holding mu. A panic inside fn poisons the accumulator
// before the lock is released and the panic continues unwinding.
func (a *Accumulator) locked(mu *sync.Mutex, fn func()) {
	mu.Lock()
	defer func() {
		if r := recover(); r != nil {
			a.Poison()
			mu.Unlock()
			panic(r)
		}
		mu.Unlock()
	}()
	fn()
}
