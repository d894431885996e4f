package primes

import (
	"sync"

	"github.com/agbru/primecalc/internal/progress"
)

// Cursor hands out the candidates of [FirstCandidate, limit) one at a time.
// Every candidate is returned by exactly one Claim call across all callers.
type Cursor struct {
	mu    sync.Mutex
	next  uint64
	limit uint64

	report progress.ProgressCallback
	every  uint64
}

// CursorOption configures a Cursor.
type CursorOption func(*Cursor)

// WithProgress emits report(percent) whenever a claimed candidate is an exact
// multiple of every. The callback runs outside the cursor's lock.
func WithProgress(report progress.ProgressCallback, every uint64) CursorOption {
	return func(c *Cursor) {
		c.report = report
		c.every = every
	}
}

// NewCursor returns a cursor positioned at FirstCandidate.
func NewCursor(limit uint64, opts ...CursorOption) *Cursor {
	c := &Cursor{next: FirstCandidate, limit: limit}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Claim returns the next unclaimed candidate. ok is false once the range is
// exhausted; the cursor never advances past limit.
func (c *Cursor) Claim() (candidate uint64, ok bool) {
	c.mu.Lock()
	candidate = c.next
	if candidate >= c.limit {
		c.mu.Unlock()
		return 0, false
	}
	c.next++
	c.mu.Unlock()

	if c.report != nil && progress.ShouldReport(candidate, c.every) {
		c.report(progress.PercentOf(candidate, c.limit))
	}
	return candidate, true
}

// Limit returns the exclusive upper bound.
func (c *Cursor) Limit() uint64 {
	return c.limit
}
