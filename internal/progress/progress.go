package progress

import "math/bits"

// ProgressUpdate is a progress notification for one run.
type ProgressUpdate struct {
	// RunIndex identifies the run that produced the update.
	RunIndex int
	// Percent is floor(candidate * 100 / limit), in [0, 100).
	Percent uint64
	// Done is set once, after the run has finished. Percent is meaningless then.
	Done bool
}

// ProgressCallback receives the percentage of the candidate range claimed so
// far. It may be called concurrently from several workers and must not block
// for long.
type ProgressCallback func(percent uint64)

// PercentOf returns floor(candidate * 100 / limit) without overflowing for
// any candidate < limit.
func PercentOf(candidate, limit uint64) uint64 {
	if limit == 0 {
		return 0
	}
	hi, lo := bits.Mul64(candidate, 100)
	if hi >= limit {
		// candidate >= limit; clamp instead of panicking in Div64.
		return 100
	}
	q, _ := bits.Div64(hi, lo, limit)
	return q
}

// ShouldReport reports whether a claimed candidate triggers a progress signal.
// An interval of zero disables reporting.
func ShouldReport(candidate, every uint64) bool {
	return every != 0 && candidate%every == 0
}

// NewChannelCallback returns a callback forwarding percentages to ch, tagged
// with runIndex. The send never blocks: when ch is full the update is
// dropped, so a stalled display cannot hold up the workers. A nil channel
// yields a no-op callback.
func NewChannelCallback(ch chan<- ProgressUpdate, runIndex int) ProgressCallback {
	if ch == nil {
		return func(uint64) {}
	}
	return func(percent uint64) {
		select {
		case ch <- ProgressUpdate{RunIndex: runIndex, Percent: percent}:
		default:
		}
	}
}

// Noop is a callback that discards every update.
func Noop(uint64) {}
