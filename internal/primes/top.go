package primes

import (
	"container/heap"
	"fmt"
	"slices"
	"strings"
)

// Policy selects how a top-K collection retains values while a run is in
// progress.
type Policy int

const (
	// RetainAll appends every value and trims to the K largest, sorted
	// ascending, only when the collection is finalized. Memory grows with
	// the number of primes found. This is the pool's default.
	RetainAll Policy = iota
	// SlidingWindow drops the oldest value whenever more than K are held,
	// keeping the K most recently recorded values in insertion order. This
	// is the sequential run's default. It only equals the K largest when
	// values arrive in increasing order.
	SlidingWindow
	// KeepLargest holds at most K values at any time and always the K
	// largest seen so far.
	KeepLargest
)

// String returns the policy name used in flags and output.
func (p Policy) String() string {
	switch p {
	case RetainAll:
		return "retain-all"
	case SlidingWindow:
		return "sliding-window"
	case KeepLargest:
		return "keep-largest"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy is the inverse of Policy.String.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(s) {
	case "retain-all":
		return RetainAll, nil
	case "sliding-window":
		return SlidingWindow, nil
	case "keep-largest":
		return KeepLargest, nil
	}
	return 0, fmt.Errorf("unknown top-K policy %q", s)
}

// topSet is an unsynchronized top-K collection. Accumulator guards it with
// its own lock; the sequential run uses it directly.
type topSet struct {
	policy Policy
	k      int
	values []uint64
	// peak is the largest size the collection reached.
	peak int
}

func newTopSet(policy Policy, k int) *topSet {
	if k < 1 {
		k = DefaultTopK
	}
	return &topSet{policy: policy, k: k}
}

func (t *topSet) add(v uint64) {
	switch t.policy {
	case SlidingWindow:
		t.values = append(t.values, v)
		if len(t.values) > t.k {
			t.values = t.values[1:]
		}
	case KeepLargest:
		h := (*minHeap)(&t.values)
		if len(t.values) < t.k {
			heap.Push(h, v)
		} else if v > t.values[0] {
			t.values[0] = v
			heap.Fix(h, 0)
		}
	default:
		t.values = append(t.values, v)
	}
	if len(t.values) > t.peak {
		t.peak = len(t.values)
	}
}

// final returns the collection as reported to callers: the sliding window is
// returned in insertion order, the other policies as the K largest values
// sorted ascending.
func (t *topSet) final() []uint64 {
	out := slices.Clone(t.values)
	if t.policy == SlidingWindow {
		return out
	}
	return FinalizeTop(out, t.k)
}

// FinalizeTop sorts values ascending and keeps the last k entries. The
// result does not depend on the order in which values were recorded.
func FinalizeTop(values []uint64, k int) []uint64 {
	slices.Sort(values)
	if len(values) > k {
		return slices.Clone(values[len(values)-k:])
	}
	return values
}

// minHeap implements heap.Interface over a uint64 slice.
type minHeap []uint64

func (h minHeap) Len() int           { return len(h) }
func (h minHeap) Less(i, j int) bool { return h[i] < h[j] }
func (h minHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *minHeap) Push(x any) { *h = append(*h, x.(uint64)) }

func (h *minHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}
