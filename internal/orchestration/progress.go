package orchestration

import (
	"time"

	"github.com/agbru/primecalc/internal/format"
	"github.com/agbru/primecalc/internal/progress"
)

// ProgressAggregator tracks ETA state for a sequence of runs. Both the CLI
// and the TUI use it to turn raw percentage updates into displayable state.
type ProgressAggregator struct {
	runs []*format.ProgressWithETA
	done []bool
}

// NewProgressAggregator creates an aggregator for numRuns runs.
// Returns nil if numRuns <= 0.
func NewProgressAggregator(numRuns int) *ProgressAggregator {
	if numRuns <= 0 {
		return nil
	}
	a := &ProgressAggregator{
		runs: make([]*format.ProgressWithETA, numRuns),
		done: make([]bool, numRuns),
	}
	for i := range a.runs {
		a.runs[i] = format.NewProgressWithETA()
	}
	return a
}

// AggregatedProgress holds the result of processing a single progress update.
type AggregatedProgress struct {
	// RunIndex is the index of the run that sent the update.
	RunIndex int
	// Percent is the raw percentage from the update.
	Percent uint64
	// Fraction is the run's progress in [0, 1].
	Fraction float64
	// Overall is the mean progress across all runs.
	Overall float64
	// ETA is the estimated remaining time of the current run.
	ETA time.Duration
	// Done reports that the run has finished.
	Done bool
}

// Update processes a single progress update. Updates for unknown run
// indices are ignored and return the zero value.
func (a *ProgressAggregator) Update(update progress.ProgressUpdate) AggregatedProgress {
	if update.RunIndex < 0 || update.RunIndex >= len(a.runs) {
		return AggregatedProgress{}
	}
	state := a.runs[update.RunIndex]
	var eta time.Duration
	if update.Done {
		a.done[update.RunIndex] = true
		state.Update(1)
	} else {
		_, eta = state.UpdateWithETA(float64(update.Percent) / 100)
	}
	return AggregatedProgress{
		RunIndex: update.RunIndex,
		Percent:  update.Percent,
		Fraction: state.Fraction(),
		Overall:  a.Overall(),
		ETA:      eta,
		Done:     update.Done,
	}
}

// Overall returns the mean progress across all runs.
func (a *ProgressAggregator) Overall() float64 {
	var total float64
	for _, r := range a.runs {
		total += r.Fraction()
	}
	return total / float64(len(a.runs))
}

// Finished reports whether the run at index i has completed.
func (a *ProgressAggregator) Finished(i int) bool {
	return i >= 0 && i < len(a.done) && a.done[i]
}

// NumRuns returns the number of runs being tracked.
func (a *ProgressAggregator) NumRuns() int {
	return len(a.runs)
}

// DrainChannel reads all updates from the channel without processing.
func DrainChannel(progressChan <-chan progress.ProgressUpdate) {
	for range progressChan {
	}
}
