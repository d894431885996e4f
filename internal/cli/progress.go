package cli

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/primecalc/internal/config"
	"github.com/agbru/primecalc/internal/format"
	"github.com/agbru/primecalc/internal/orchestration"
	"github.com/agbru/primecalc/internal/progress"
)

// CLIProgressReporter implements orchestration.ProgressReporter for the
// terminal.
type CLIProgressReporter struct {
	// Style is config.ProgressPlain, config.ProgressSpinner or
	// config.ProgressNone.
	Style string
}

var _ orchestration.ProgressReporter = CLIProgressReporter{}

// DisplayProgress renders updates until progressChan is closed.
func (r CLIProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numRuns int, out io.Writer) {
	defer wg.Done()
	switch r.Style {
	case config.ProgressPlain:
		displayPlain(progressChan, out)
	case config.ProgressSpinner:
		displaySpinner(progressChan, numRuns, out)
	default:
		orchestration.DrainChannel(progressChan)
	}
}

// displayPlain rewrites a single "Progress: P%" line in place and clears it
// when a run finishes.
func displayPlain(progressChan <-chan progress.ProgressUpdate, out io.Writer) {
	width := 0
	for update := range progressChan {
		if update.Done {
			if width > 0 {
				fmt.Fprintf(out, "\r%s\r", strings.Repeat(" ", width))
				width = 0
			}
			continue
		}
		line := fmt.Sprintf("Progress: %d%%", update.Percent)
		fmt.Fprintf(out, "\r%s", line)
		width = max(width, len(line))
	}
}

// displaySpinner shows a spinner with a progress bar and ETA for the
// current run.
func displaySpinner(progressChan <-chan progress.ProgressUpdate, numRuns int, out io.Writer) {
	agg := orchestration.NewProgressAggregator(numRuns)
	if agg == nil {
		orchestration.DrainChannel(progressChan)
		return
	}

	s := newSpinner(spinner.WithWriter(out))
	s.UpdateSuffix(spinnerSuffix(0, numRuns, 0, 0))
	s.Start()
	running := true

	for update := range progressChan {
		state := agg.Update(update)
		if state.Done {
			if running {
				s.Stop()
				running = false
			}
			continue
		}
		if !running {
			s.Start()
			running = true
		}
		s.UpdateSuffix(spinnerSuffix(state.RunIndex, numRuns, state.Fraction, state.ETA))
	}
	if running {
		s.Stop()
	}
}

func spinnerSuffix(run, numRuns int, fraction float64, eta time.Duration) string {
	return fmt.Sprintf(" Run %d/%d %s", run+1, numRuns,
		format.FormatProgressBarWithETA(fraction, eta, ProgressBarWidth))
}
