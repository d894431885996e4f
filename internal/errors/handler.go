package apperrors

import (
	"errors"
	"fmt"
	"io"
	"time"
)

// ColorProvider supplies the escape codes used when printing errors.
// A nil provider prints without color.
type ColorProvider interface {
	Red() string
	Yellow() string
	Reset() string
}

// ExitCodeFor maps an error to the exit code the process should return.
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var cfgErr ConfigError
	var workerErr WorkerError
	var mismatchErr MismatchError
	switch {
	case errors.As(err, &cfgErr):
		return ExitErrorConfig
	case errors.As(err, &workerErr):
		return ExitErrorWorker
	case errors.As(err, &mismatchErr):
		return ExitErrorMismatch
	default:
		return ExitErrorGeneric
	}
}

// HandleRunError prints a run failure and returns the matching exit code.
//
// Parameters:
//   - err: The error returned by the run. A nil error returns ExitSuccess.
//   - duration: How long the run lasted before failing.
//   - out: The writer for the error report.
//   - colors: The color provider, or nil for plain output.
//
// Returns:
//   - int: The exit code.
func HandleRunError(err error, duration time.Duration, out io.Writer, colors ColorProvider) int {
	if err == nil {
		return ExitSuccess
	}
	red, yellow, reset := "", "", ""
	if colors != nil {
		red, yellow, reset = colors.Red(), colors.Yellow(), colors.Reset()
	}
	var workerErr WorkerError
	if errors.As(err, &workerErr) {
		fmt.Fprintf(out, "%sFatal: worker %d failed after %s%s%s; results discarded.%s\n",
			red, workerErr.Worker, yellow, duration, red, reset)
		return ExitErrorWorker
	}
	fmt.Fprintf(out, "%sError: %v%s\n", red, err, reset)
	return ExitCodeFor(err)
}
