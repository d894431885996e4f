package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/agbru/primecalc/internal/config"
	"github.com/agbru/primecalc/internal/format"
	"github.com/agbru/primecalc/internal/orchestration"
	"github.com/agbru/primecalc/internal/ui"
)

// PrintExecutionConfig displays the limit, pool size and environment.
//
// Parameters:
//   - cfg: The application configuration.
//   - out: The writer for standard output.
func PrintExecutionConfig(cfg config.AppConfig, out io.Writer) {
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Enumerating primes below %s%s%s with %s%d%s workers, keeping the top %d (policy %s).\n",
		ui.ColorCyan(), format.FormatUint(cfg.Limit), ui.ColorReset(),
		ui.ColorCyan(), cfg.Workers, ui.ColorReset(),
		cfg.TopK, cfg.Policy)
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s.\n",
		ui.ColorCyan(), runtime.NumCPU(), ui.ColorReset(), ui.ColorCyan(), runtime.Version(), ui.ColorReset())
}

// PrintExecutionMode lists the runs about to execute.
//
// Parameters:
//   - runners: The runners that will be executed, in order.
//   - out: The writer for standard output.
func PrintExecutionMode(runners []orchestration.Runner, out io.Writer) {
	var modeDesc string
	if len(runners) > 1 {
		modeDesc = "Parallel run followed by the sequential baseline"
	} else if len(runners) == 1 {
		modeDesc = fmt.Sprintf("Single %s%s%s run", ui.ColorGreen(), runners[0].Name(), ui.ColorReset())
	} else {
		modeDesc = "Nothing to run"
	}
	fmt.Fprintf(out, "Execution mode: %s.\n", modeDesc)
	fmt.Fprintf(out, "\n--- Starting Execution ---\n")
}
