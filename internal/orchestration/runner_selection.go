package orchestration

import (
	"github.com/agbru/primecalc/internal/config"
	"github.com/agbru/primecalc/internal/logging"
	"github.com/agbru/primecalc/internal/primes"
)

// ObserverSource hands out a worker observer per run mode.
// *metrics.RunMetrics implements it.
type ObserverSource interface {
	Observer(mode string) primes.WorkerObserver
}

// BuildRunners returns the runners selected by cfg, parallel first, matching
// the order in which the results are reported.
//
// Parameters:
//   - cfg: The application configuration.
//   - observers: Source of per-mode worker observers, or nil.
//   - logger: Logger for pool lifecycle events, or nil.
//
// Returns:
//   - []Runner: The runners to execute.
func BuildRunners(cfg config.AppConfig, observers ObserverSource, logger logging.Logger) []Runner {
	observer := func(mode string) primes.WorkerObserver {
		if observers == nil {
			return nil
		}
		return observers.Observer(mode)
	}

	var runners []Runner
	if cfg.RunsParallel() {
		runners = append(runners, &ParallelRunner{
			NumWorkers:    cfg.Workers,
			TopK:          cfg.TopK,
			Policy:        cfg.ParallelPolicy(),
			ProgressEvery: cfg.ProgressEvery,
			Observer:      observer(config.ModeParallel),
			Logger:        logger,
		})
	}
	if cfg.RunsSequential() {
		runners = append(runners, &SequentialRunner{
			TopK:          cfg.TopK,
			Policy:        cfg.SequentialPolicy(),
			ProgressEvery: cfg.ProgressEvery,
			Observer:      observer(config.ModeSequential),
		})
	}
	return runners
}
