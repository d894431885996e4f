package orchestration

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	apperrors "github.com/agbru/primecalc/internal/errors"
	"github.com/agbru/primecalc/internal/progress"
	"github.com/agbru/primecalc/internal/telemetry"
)

// ProgressBufferMultiplier defines the buffer size multiplier for the progress
// channel. Percent updates are dropped when the buffer is full; Done updates
// always get through.
const ProgressBufferMultiplier = 5

// ExecuteRuns runs each runner in turn over [2, limit) and collects the
// results in runner order.
//
// Runs never overlap, so the sequential baseline is timed on an idle
// machine. A run that fails aborts the remaining ones: the returned slice
// then ends with the failed run.
//
// Parameters:
//   - ctx: Parent context for tracing; cancellation is checked between runs.
//   - runners: The runs to execute.
//   - limit: The exclusive upper bound.
//   - progressReporter: The progress display (NullProgressReporter for quiet mode).
//   - out: The writer handed to the progress display.
//
// Returns:
//   - []RunResult: One entry per executed run.
func ExecuteRuns(ctx context.Context, runners []Runner, limit uint64, progressReporter ProgressReporter, out io.Writer) []RunResult {
	progressChan := make(chan progress.ProgressUpdate, max(len(runners), 1)*ProgressBufferMultiplier)

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go progressReporter.DisplayProgress(&displayWg, progressChan, len(runners), out)

	results := make([]RunResult, 0, len(runners))
	for i, runner := range runners {
		spanCtx, span := telemetry.StartRun(ctx, runner.Name(), limit, runner.Workers())
		startTime := time.Now()
		res, err := runner.Run(spanCtx, limit, progress.NewChannelCallback(progressChan, i))
		duration := time.Since(startTime)
		telemetry.EndRun(span, res, err)

		progressChan <- progress.ProgressUpdate{RunIndex: i, Done: true}
		results = append(results, RunResult{
			Name: runner.Name(), Mode: runner.Mode(), Result: res, Duration: duration, Err: err,
		})
		if err != nil {
			break
		}
	}

	close(progressChan)
	displayWg.Wait()

	return results
}

// AnalyzeComparisonResults presents the results and checks that every run
// agrees on the prime count and sum. The top collections are not compared:
// with the faithful policy the parallel and sequential runs retain
// different primes.
//
// Any failed run is fatal: nothing is presented except the error.
//
// Parameters:
//   - results: The results in execution order.
//   - opts: Presentation options.
//   - presenter: The result presenter for display formatting.
//   - out: The io.Writer for the report.
//
// Returns:
//   - int: An exit code indicating success (0) or the type of failure.
func AnalyzeComparisonResults(results []RunResult, opts PresentationOptions, presenter ResultPresenter, out io.Writer) int {
	if len(results) == 0 {
		return presenter.HandleError(fmt.Errorf("no run was executed"), 0, out)
	}
	for _, res := range results {
		if res.Err != nil {
			return presenter.HandleError(res.Err, res.Duration, out)
		}
	}

	for _, res := range results {
		presenter.PresentResult(res, opts, out)
	}

	if opts.Verbose && len(results) > 1 {
		sorted := make([]RunResult, len(results))
		copy(sorted, results)
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Duration < sorted[j].Duration
		})
		presenter.PresentComparisonTable(sorted, out)
	}

	if err := CompareResults(results); err != nil {
		return presenter.HandleError(err, 0, out)
	}
	if opts.Verbose && len(results) > 1 {
		fmt.Fprintf(out, "\nGlobal Status: Success. Count and sum agree across all runs.\n")
	}
	return apperrors.ExitSuccess
}

// CompareResults returns a MismatchError if any run disagrees with the first
// one on count or sum.
func CompareResults(results []RunResult) error {
	if len(results) < 2 {
		return nil
	}
	ref := results[0].Result
	for _, res := range results[1:] {
		if res.Result.Count != ref.Count {
			return apperrors.MismatchError{Field: "count", Want: ref.Count, Got: res.Result.Count}
		}
		if res.Result.Sum != ref.Sum {
			return apperrors.MismatchError{Field: "sum", Want: ref.Sum, Got: res.Result.Sum}
		}
	}
	return nil
}
