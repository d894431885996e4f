package app

import (
	"context"
	"io"

	"github.com/agbru/primecalc/internal/cli"
	apperrors "github.com/agbru/primecalc/internal/errors"
	"github.com/agbru/primecalc/internal/logging"
	"github.com/agbru/primecalc/internal/metrics"
	"github.com/agbru/primecalc/internal/orchestration"
	"github.com/agbru/primecalc/internal/tui"
)

// runEnumeration executes the runs with terminal output.
func (a *Application) runEnumeration(ctx context.Context, runners []orchestration.Runner, runMetrics *metrics.RunMetrics, out io.Writer) int {
	cfg := a.Config

	if !cfg.Quiet {
		cli.PrintExecutionConfig(cfg, out)
		cli.PrintExecutionMode(runners, out)
	}

	reporter := cli.CLIProgressReporter{Style: cli.EffectiveProgressStyle(cfg, out)}
	memory := metrics.NewMemoryCollector()
	before := memory.Snapshot()

	results := orchestration.ExecuteRuns(ctx, runners, cfg.Limit, reporter, out)
	memDelta := memory.Snapshot().Since(before)

	a.recordResults(results, runMetrics)

	opts := orchestration.PresentationOptions{Limit: cfg.Limit, Quiet: cfg.Quiet, Verbose: cfg.Verbose}
	exitCode := orchestration.AnalyzeComparisonResults(results, opts, cli.CLIResultPresenter{}, out)
	if exitCode == apperrors.ExitErrorWorker {
		return exitCode
	}

	if cfg.Verbose && !cfg.Quiet {
		cli.DisplayMemoryStats(memDelta, out)
	}
	if cfg.Metrics {
		if err := runMetrics.WriteText(out); err != nil {
			a.Logger.Error("writing metrics", err)
			return apperrors.ExitErrorGeneric
		}
	}
	return exitCode
}

// runDashboard executes the runs inside the TUI. The log would tear the
// alternate screen, so completed passes only feed the metrics registry.
func (a *Application) runDashboard(ctx context.Context, runners []orchestration.Runner, runMetrics *metrics.RunMetrics, out io.Writer) int {
	exitCode := tui.Run(ctx, runners, a.Config, Version, func(results []orchestration.RunResult) {
		observeResults(results, runMetrics)
	})
	if a.Config.Metrics {
		if err := runMetrics.WriteText(out); err != nil {
			a.Logger.Error("writing metrics", err)
			return apperrors.ExitErrorGeneric
		}
	}
	return exitCode
}

// observeResults records every successful run in the metrics registry.
func observeResults(results []orchestration.RunResult, runMetrics *metrics.RunMetrics) {
	for _, res := range results {
		if res.Err == nil {
			runMetrics.ObserveRun(res.Mode, res.Duration, res.Result)
		}
	}
}

// recordResults feeds run outcomes to the metrics registry and the log.
func (a *Application) recordResults(results []orchestration.RunResult, runMetrics *metrics.RunMetrics) {
	observeResults(results, runMetrics)
	for _, res := range results {
		if res.Err != nil {
			a.Logger.Error("run failed", res.Err,
				logging.String("run", res.Name),
				logging.Duration("after", res.Duration))
			continue
		}
		a.Logger.Debug("run finished",
			logging.String("run", res.Name),
			logging.Uint64("count", res.Result.Count),
			logging.Uint64("sum", res.Result.Sum),
			logging.Int("top_peak", res.Result.TopPeak),
			logging.Duration("duration", res.Duration))
		if res.Result.SumOverflow {
			a.Logger.Info("prime sum overflowed 64 bits",
				logging.String("run", res.Name),
				logging.Uint64("limit", a.Config.Limit))
		}
	}
}
