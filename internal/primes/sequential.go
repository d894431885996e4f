package primes

import (
	"math/bits"

	"github.com/agbru/primecalc/internal/progress"
)

// SequentialOptions configures RunSequential.
type SequentialOptions struct {
	// TopK is the size of the top collection. Values below 1 use DefaultTopK.
	TopK int
	// Policy is the top-K retention policy. The zero value is RetainAll; the
	// faithful baseline uses SlidingWindow.
	Policy Policy
	// Progress, if set, receives a percentage whenever the current candidate
	// is a multiple of ProgressEvery.
	Progress      progress.ProgressCallback
	ProgressEvery uint64
	// Test decides primality. Nil uses IsPrime.
	Test func(uint64) bool
	// Observer, if set, receives the totals as worker 0.
	Observer WorkerObserver
}

// RunSequential enumerates [FirstCandidate, limit) on the calling goroutine
// with no synchronization at all.
func RunSequential(limit uint64, opts SequentialOptions) Result {
	test := opts.Test
	if test == nil {
		test = IsPrime
	}
	top := newTopSet(opts.Policy, opts.TopK)

	var res Result
	for i := FirstCandidate; i < limit; i++ {
		if test(i) {
			var carry uint64
			res.Sum, carry = bits.Add64(res.Sum, i, 0)
			if carry != 0 {
				res.SumOverflow = true
			}
			res.Count++
			top.add(i)
		}
		if opts.Progress != nil && progress.ShouldReport(i, opts.ProgressEvery) {
			opts.Progress(progress.PercentOf(i, limit))
		}
		res.Claimed++
	}

	res.Top = top.final()
	res.TopPeak = top.peak
	if opts.Observer != nil {
		opts.Observer.WorkerDone(0, res.Claimed, res.Count)
	}
	return res
}
