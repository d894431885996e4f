// Package cli renders prime enumeration progress and results on a terminal:
// the progress line or spinner, the per-run result lines, the comparison
// table and shell completion scripts.
package cli
