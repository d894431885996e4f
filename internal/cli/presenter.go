package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/agbru/primecalc/internal/config"
	apperrors "github.com/agbru/primecalc/internal/errors"
	"github.com/agbru/primecalc/internal/format"
	"github.com/agbru/primecalc/internal/metrics"
	"github.com/agbru/primecalc/internal/orchestration"
	"github.com/agbru/primecalc/internal/ui"
)

// CLIColorProvider supplies the current theme's escape codes to apperrors.
type CLIColorProvider struct{}

func (CLIColorProvider) Red() string    { return ui.ColorRed() }
func (CLIColorProvider) Yellow() string { return ui.ColorYellow() }
func (CLIColorProvider) Reset() string  { return ui.ColorReset() }

// CLIResultPresenter implements orchestration.ResultPresenter for terminal
// output.
type CLIResultPresenter struct{}

var _ orchestration.ResultPresenter = CLIResultPresenter{}

// FormatResultLine returns the summary line of a run. The parallel line
// reads "elapsed_ms, count, sum"; the sequential one reads
// "sum, count, elapsed_ms".
func FormatResultLine(res orchestration.RunResult) string {
	ms := format.ElapsedMillis(res.Duration)
	if res.Mode == config.ModeSequential {
		return fmt.Sprintf("%d, %d, %d", res.Result.Sum, res.Result.Count, ms)
	}
	return fmt.Sprintf("%d, %d, %d", ms, res.Result.Count, res.Result.Sum)
}

// PresentResult prints the summary line and the top primes of one run.
// Verbose mode adds a labelled detail line.
func (CLIResultPresenter) PresentResult(res orchestration.RunResult, opts orchestration.PresentationOptions, out io.Writer) {
	fmt.Fprintln(out, FormatResultLine(res))
	fmt.Fprintln(out, format.FormatUintList(res.Result.Top))

	if res.Result.SumOverflow {
		fmt.Fprintf(out, "%sWarning: the sum of primes below %d exceeds 64 bits; the reported sum wrapped around.%s\n",
			ui.ColorYellow(), opts.Limit, ui.ColorReset())
	}
	if opts.Verbose && !opts.Quiet {
		fmt.Fprintf(out, "  %s%s%s: %s primes, sum %s, %d top values kept (collection peaked at %s), %s\n",
			ui.ColorBlue(), res.Name, ui.ColorReset(),
			format.FormatUint(res.Result.Count), format.FormatUint(res.Result.Sum),
			len(res.Result.Top), format.FormatUint(uint64(res.Result.TopPeak)),
			format.FormatRunDuration(res.Duration))
	}
}

// PresentComparisonTable displays run names, durations, counts and status.
// Uses manual padding so ANSI codes do not break the alignment.
func (CLIResultPresenter) PresentComparisonTable(results []orchestration.RunResult, out io.Writer) {
	fmt.Fprintf(out, "\n--- Comparison Summary ---\n")

	nameWidth, durWidth := len("Run"), len("Duration")
	for _, res := range results {
		nameWidth = max(nameWidth, len(res.Name))
		durWidth = max(durWidth, len(format.FormatRunDuration(res.Duration)))
	}

	fmt.Fprintf(out, "%sRun%s%s   %sDuration%s%s   %sPrimes%s\n",
		ui.ColorUnderline(), ui.ColorReset(), padRight("", nameWidth-len("Run")),
		ui.ColorUnderline(), ui.ColorReset(), padRight("", durWidth-len("Duration")),
		ui.ColorUnderline(), ui.ColorReset())

	for _, res := range results {
		duration := format.FormatRunDuration(res.Duration)
		var status string
		if res.Err != nil {
			status = fmt.Sprintf("%sFailure (%v)%s", ui.ColorRed(), res.Err, ui.ColorReset())
		} else {
			status = fmt.Sprintf("%s%s%s", ui.ColorGreen(), format.FormatUint(res.Result.Count), ui.ColorReset())
		}
		fmt.Fprintf(out, "%s%s%s%s   %s%s%s%s   %s\n",
			ui.ColorBlue(), res.Name, ui.ColorReset(), padRight("", nameWidth-len(res.Name)),
			ui.ColorYellow(), duration, ui.ColorReset(), padRight("", durWidth-len(duration)),
			status)
	}

	if len(results) > 1 && results[0].Duration > 0 {
		slowest := results[len(results)-1]
		fmt.Fprintf(out, "Speed-up of %s over %s: %s%s%s\n",
			results[0].Name, slowest.Name,
			ui.ColorCyan(), format.FormatSpeedup(results[0].Duration, slowest.Duration), ui.ColorReset())
	}
}

// HandleError prints a run failure and returns the exit code.
func (CLIResultPresenter) HandleError(err error, duration time.Duration, out io.Writer) int {
	return apperrors.HandleRunError(err, duration, out, CLIColorProvider{})
}

// DisplayMemoryStats shows the memory consumed by the runs.
func DisplayMemoryStats(delta metrics.MemoryDelta, out io.Writer) {
	fmt.Fprintf(out, "\nMemory Stats:\n")
	fmt.Fprintf(out, "  Heap after runs: %s\n", format.FormatBytes(delta.HeapAfter))
	fmt.Fprintf(out, "  Total allocated: %s\n", format.FormatBytes(delta.Allocated))
	fmt.Fprintf(out, "  GC cycles:       %d\n", delta.NumGC)
	fmt.Fprintf(out, "  GC pause total:  %.2fms\n", float64(delta.PauseTotalNs)/1e6)
}

// padRight returns s followed by length spaces.
func padRight(s string, length int) string {
	if length <= 0 {
		return s
	}
	return s + fmt.Sprintf("%*s", length, "")
}
