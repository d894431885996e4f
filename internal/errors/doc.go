// Package apperrors maps primecalc failures to process exit codes.
//
// A bad flag value is a ConfigError (exit 4), a panicking pool worker a
// WorkerError (exit 5), and runs that disagree on the prime count or sum a
// MismatchError (exit 3). Causes are kept behind Unwrap so errors.Is and
// errors.As see through them.
package apperrors
