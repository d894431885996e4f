// Package ui holds the color themes shared by the primecalc result lines,
// the comparison table and the dashboard palette. Color is dropped when
// NO_COLOR is set or --no-color is given, so piped output stays plain.
package ui
