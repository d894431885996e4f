// Package tui implements the --tui dashboard: a bubbletea program showing
// a progress bar per run, the result lines as they arrive, and host load.
package tui
