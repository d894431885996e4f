// Package config handles command-line and environment configuration for
// primecalc. Defaults reproduce a plain invocation: ten million candidates,
// eight workers, the ten largest primes, a progress signal every million.
package config

import (
	"flag"
	"fmt"
	"io"
	"strings"

	apperrors "github.com/agbru/primecalc/internal/errors"
	"github.com/agbru/primecalc/internal/primes"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "PRIMECALC_"

// Run modes.
const (
	ModeBoth       = "both"
	ModeParallel   = "parallel"
	ModeSequential = "sequential"
)

// Top-K policy selections.
const (
	// PolicyFaithful keeps the pool's retain-all-then-trim collection and
	// the sequential run's sliding window.
	PolicyFaithful = "faithful"
	// PolicyLargest makes both runs keep the K largest primes.
	PolicyLargest = "largest"
)

// Progress display styles.
const (
	ProgressPlain   = "plain"
	ProgressSpinner = "spinner"
	ProgressNone    = "none"
)

// AppConfig aggregates the application's configuration parameters.
type AppConfig struct {
	// Limit is the exclusive upper bound of the candidate range.
	Limit uint64
	// Workers is the fixed size of the worker pool.
	Workers int
	// TopK is the size of the top collection.
	TopK int
	// ProgressEvery is the candidate interval of progress signals; 0 disables them.
	ProgressEvery uint64
	// Policy is PolicyFaithful or PolicyLargest.
	Policy string
	// Mode selects which runs execute.
	Mode string
	// Progress is the progress display style.
	Progress string
	// progressSet records whether Progress was chosen explicitly.
	progressSet bool

	Quiet    bool
	Verbose  bool
	Metrics  bool
	TUI      bool
	NoColor  bool
	LogLevel string

	// Completion, when set, prints a shell completion script and exits.
	Completion string
}

// ProgressExplicit reports whether the progress style was set by flag or
// environment rather than defaulted.
func (c AppConfig) ProgressExplicit() bool {
	return c.progressSet
}

// ParallelPolicy returns the top-K policy used by the worker pool.
func (c AppConfig) ParallelPolicy() primes.Policy {
	if c.Policy == PolicyLargest {
		return primes.KeepLargest
	}
	return primes.RetainAll
}

// SequentialPolicy returns the top-K policy used by the sequential run.
func (c AppConfig) SequentialPolicy() primes.Policy {
	if c.Policy == PolicyLargest {
		return primes.KeepLargest
	}
	return primes.SlidingWindow
}

// RunsParallel reports whether the pool run is enabled.
func (c AppConfig) RunsParallel() bool {
	return c.Mode == ModeBoth || c.Mode == ModeParallel
}

// RunsSequential reports whether the sequential run is enabled.
func (c AppConfig) RunsSequential() bool {
	return c.Mode == ModeBoth || c.Mode == ModeSequential
}

// Default returns the configuration used when no flag or variable is set.
func Default() AppConfig {
	return AppConfig{
		Limit:         primes.DefaultLimit,
		Workers:       primes.DefaultWorkers,
		TopK:          primes.DefaultTopK,
		ProgressEvery: primes.DefaultProgressEvery,
		Policy:        PolicyFaithful,
		Mode:          ModeBoth,
		Progress:      ProgressPlain,
		LogLevel:      "info",
	}
}

// ParseConfig parses the command-line arguments, applies environment
// overrides for flags that were not set, and validates the result.
//
// Parameters:
//   - programName: The name used in usage output.
//   - args: The arguments without the program name.
//   - errorOutput: The writer for usage and parse errors.
//
// Returns:
//   - AppConfig: The resulting configuration.
//   - error: flag.ErrHelp for -h, a ConfigError for invalid values, or a
//     flag parsing error.
func ParseConfig(programName string, args []string, errorOutput io.Writer) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorOutput)

	config := Default()
	fs.Uint64Var(&config.Limit, "limit", config.Limit, "Exclusive upper bound of the candidate range.")
	fs.Uint64Var(&config.Limit, "l", config.Limit, "Shorthand for --limit.")
	fs.IntVar(&config.Workers, "workers", config.Workers, "Number of parallel workers.")
	fs.IntVar(&config.Workers, "w", config.Workers, "Shorthand for --workers.")
	fs.IntVar(&config.TopK, "top", config.TopK, "Number of primes kept in the top collection.")
	fs.Uint64Var(&config.ProgressEvery, "progress-every", config.ProgressEvery, "Emit progress every N candidates (0 disables).")
	fs.StringVar(&config.Policy, "policy", config.Policy, "Top-K retention: 'faithful' or 'largest'.")
	fs.StringVar(&config.Mode, "mode", config.Mode, "Runs to execute: 'both', 'parallel' or 'sequential'.")
	fs.StringVar(&config.Progress, "progress", config.Progress, "Progress display: 'plain', 'spinner' or 'none'.")
	fs.BoolVar(&config.Quiet, "quiet", false, "Print only the result lines.")
	fs.BoolVar(&config.Quiet, "q", false, "Shorthand for --quiet.")
	fs.BoolVar(&config.Verbose, "verbose", false, "Show the comparison table and memory statistics.")
	fs.BoolVar(&config.Verbose, "v", false, "Shorthand for --verbose.")
	fs.BoolVar(&config.Metrics, "metrics", false, "Print Prometheus metrics after the runs.")
	fs.BoolVar(&config.TUI, "tui", false, "Run the interactive dashboard.")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output.")
	fs.StringVar(&config.LogLevel, "log-level", config.LogLevel, "Diagnostic log level (debug, info, warn, error).")
	fs.StringVar(&config.Completion, "completion", "", "Print a completion script (bash, zsh, fish, powershell).")

	fs.Usage = func() {
		fmt.Fprintf(errorOutput, "Usage: %s [flags]\n\nEnumerates the primes below a limit with a worker pool and a sequential baseline.\n\nFlags:\n", programName)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}
	if fs.NArg() > 0 {
		err := apperrors.NewConfigError("unexpected arguments: %s", strings.Join(fs.Args(), " "))
		fmt.Fprintln(errorOutput, "Error:", err)
		return AppConfig{}, err
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "progress" {
			config.progressSet = true
		}
	})
	applyEnvOverrides(&config, fs)

	if err := config.Validate(); err != nil {
		fmt.Fprintln(errorOutput, "Error:", err)
		return AppConfig{}, err
	}
	return config, nil
}

// Validate checks the configuration for values the runs cannot accept.
func (c AppConfig) Validate() error {
	if c.Limit < primes.FirstCandidate {
		return apperrors.NewConfigError("--limit must be at least %d (got %d)", primes.FirstCandidate, c.Limit)
	}
	if c.Workers < 1 {
		return apperrors.NewConfigError("--workers must be at least 1 (got %d)", c.Workers)
	}
	if c.TopK < 1 {
		return apperrors.NewConfigError("--top must be at least 1 (got %d)", c.TopK)
	}
	if !oneOf(c.Policy, PolicyFaithful, PolicyLargest) {
		return apperrors.NewConfigError("unknown --policy %q (accepted: %s, %s)", c.Policy, PolicyFaithful, PolicyLargest)
	}
	if !oneOf(c.Mode, ModeBoth, ModeParallel, ModeSequential) {
		return apperrors.NewConfigError("unknown --mode %q (accepted: %s, %s, %s)", c.Mode, ModeBoth, ModeParallel, ModeSequential)
	}
	if !oneOf(c.Progress, ProgressPlain, ProgressSpinner, ProgressNone) {
		return apperrors.NewConfigError("unknown --progress %q (accepted: %s, %s, %s)", c.Progress, ProgressPlain, ProgressSpinner, ProgressNone)
	}
	if c.Completion != "" && !oneOf(c.Completion, "bash", "zsh", "fish", "powershell", "ps") {
		return apperrors.NewConfigError("unsupported shell %q for --completion", c.Completion)
	}
	return nil
}

func oneOf(v string, accepted ...string) bool {
	for _, a := range accepted {
		if v == a {
			return true
		}
	}
	return false
}
