//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

package orchestration

import (
	"io"
	"sync"
	"time"

	"github.com/agbru/primecalc/internal/primes"
	"github.com/agbru/primecalc/internal/progress"
)

// RunResult encapsulates the outcome of a single enumeration run.
// It is the shared domain type between orchestration and presentation.
type RunResult struct {
	// Name is the display name of the runner (e.g., "Parallel (8 workers)").
	Name string
	// Mode is config.ModeParallel or config.ModeSequential.
	Mode string
	// Result holds sum, count and top primes. It is zero if Err is set.
	Result primes.Result
	// Duration is the wall-clock time of the run.
	Duration time.Duration
	// Err is the failure that aborted the run, if any.
	Err error
}

// PresentationOptions configures how results are presented to the user.
type PresentationOptions struct {
	Limit   uint64
	Quiet   bool
	Verbose bool
}

// ProgressReporter displays run progress.
//
// DisplayProgress is started in its own goroutine before the first run and
// must consume progressChan until it is closed, then call wg.Done. An update
// with Done set marks the end of the run at RunIndex.
type ProgressReporter interface {
	DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numRuns int, out io.Writer)
}

// ProgressReporterFunc is a function adapter that implements ProgressReporter.
type ProgressReporterFunc func(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numRuns int, out io.Writer)

// DisplayProgress calls the underlying function.
func (f ProgressReporterFunc) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numRuns int, out io.Writer) {
	f(wg, progressChan, numRuns, out)
}

// NullProgressReporter drains the progress channel without displaying
// anything. Used for quiet mode and tests.
type NullProgressReporter struct{}

// DisplayProgress drains the channel without output.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, _ int, _ io.Writer) {
	defer wg.Done()
	DrainChannel(progressChan)
}

// ResultPresenter renders run results. Implementations decide the output
// format (plain CLI lines, colored tables, ...).
type ResultPresenter interface {
	// PresentResult displays the outcome of one run.
	PresentResult(result RunResult, opts PresentationOptions, out io.Writer)
	// PresentComparisonTable displays a summary of all runs.
	PresentComparisonTable(results []RunResult, out io.Writer)
	// HandleError reports a failure and returns the exit code.
	HandleError(err error, duration time.Duration, out io.Writer) int
}
