// Package format holds pure formatting helpers shared by the CLI and the
// dashboard: durations, grouped numbers, progress bars and ETA estimates.
package format
