package tui

import (
	"fmt"
	"time"

	"github.com/agbru/primecalc/internal/format"
)

// HeaderModel renders the top bar: title, version, limit and elapsed time.
type HeaderModel struct {
	startTime time.Time
	endTime   time.Time
	version   string
	limit     uint64
	width     int
}

// NewHeaderModel creates a new header.
func NewHeaderModel(version string, limit uint64) HeaderModel {
	return HeaderModel{startTime: time.Now(), version: version, limit: limit}
}

// SetDone freezes the elapsed timer.
func (h *HeaderModel) SetDone() {
	h.endTime = time.Now()
}

// Reset restarts the elapsed timer.
func (h *HeaderModel) Reset() {
	h.startTime = time.Now()
	h.endTime = time.Time{}
}

// SetWidth updates the available width.
func (h *HeaderModel) SetWidth(w int) {
	h.width = w
}

// Elapsed returns the running or frozen elapsed time.
func (h HeaderModel) Elapsed() time.Duration {
	if !h.endTime.IsZero() {
		return h.endTime.Sub(h.startTime)
	}
	return time.Since(h.startTime)
}

// View renders the header.
func (h HeaderModel) View() string {
	title := "PrimeCalc Monitor"
	if h.version != "" && h.version != "dev" {
		title += " " + h.version
	}
	row := titleStyle.Render(title) +
		dimStyle.Render(" | ") +
		accentStyle.Render("primes below "+format.FormatUint(h.limit)) +
		dimStyle.Render(" | ") +
		accentStyle.Render(fmt.Sprintf("Elapsed: %s", format.FormatRunDuration(h.Elapsed())))
	if h.width > 0 {
		return headerStyle.Width(h.width).Render(row)
	}
	return headerStyle.Render(row)
}
