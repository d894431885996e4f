package tui

import (
	"time"

	"github.com/agbru/primecalc/internal/orchestration"
)

// ProgressMsg carries a progress update of one run.
type ProgressMsg struct {
	RunIndex int
	Fraction float64
	ETA      time.Duration
	Done     bool
}

// ProgressDoneMsg signals that the progress channel has been closed.
type ProgressDoneMsg struct{}

// RunResultMsg carries the presented result of one run.
type RunResultMsg struct {
	Result orchestration.RunResult
}

// ComparisonResultsMsg carries the runs sorted by duration.
type ComparisonResultsMsg struct {
	Results []orchestration.RunResult
}

// ErrorMsg reports a failed run or a result mismatch.
type ErrorMsg struct {
	Err      error
	Duration time.Duration
}

// RunsCompleteMsg is sent when every run has finished and been analyzed.
type RunsCompleteMsg struct {
	ExitCode   int
	Generation uint64
}

// ContextCancelledMsg is sent when the parent context is cancelled.
type ContextCancelledMsg struct {
	Err error
}

// TickMsg drives periodic sampling.
type TickMsg time.Time

// SysStatsMsg carries a host load sample.
type SysStatsMsg struct {
	CPUPercent  float64
	MemPercent  float64
	LogicalCPUs int
	Goroutines  int
}
