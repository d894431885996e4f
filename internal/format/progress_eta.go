package format

import (
	"fmt"
	"strings"
	"time"
)

// maxETA caps the estimate so a stalled rate never prints absurd values.
const maxETA = 24 * time.Hour

// ProgressWithETA tracks the completed fraction of a single run and keeps an
// exponentially smoothed completion rate for ETA estimation.
type ProgressWithETA struct {
	fraction     float64
	startTime    time.Time
	lastUpdate   time.Time
	lastFraction float64
	progressRate float64 // fraction per second
}

// NewProgressWithETA returns a tracker starting now at zero progress.
func NewProgressWithETA() *ProgressWithETA {
	now := time.Now()
	return &ProgressWithETA{startTime: now, lastUpdate: now}
}

// Update records the completed fraction, clamped to [0, 1], and refreshes
// the smoothed rate.
func (p *ProgressWithETA) Update(fraction float64) {
	fraction = clamp01(fraction)
	now := time.Now()
	dt := now.Sub(p.lastUpdate).Seconds()
	if dt > 0 {
		if df := fraction - p.lastFraction; df > 0 {
			instant := df / dt
			if p.progressRate > 0 {
				p.progressRate = 0.7*p.progressRate + 0.3*instant
			} else {
				p.progressRate = instant
			}
		}
		p.lastFraction = fraction
		p.lastUpdate = now
	}
	p.fraction = fraction
}

// UpdateWithETA records the fraction and returns it with the current estimate.
func (p *ProgressWithETA) UpdateWithETA(fraction float64) (float64, time.Duration) {
	p.Update(fraction)
	return p.fraction, p.GetETA()
}

// Fraction returns the last recorded fraction.
func (p *ProgressWithETA) Fraction() float64 {
	return p.fraction
}

// Elapsed returns the time since the tracker was created.
func (p *ProgressWithETA) Elapsed() time.Duration {
	return time.Since(p.startTime)
}

// GetETA returns the estimated remaining time, or 0 while no rate is known.
func (p *ProgressWithETA) GetETA() time.Duration {
	if p.progressRate <= 0 {
		return 0
	}
	remaining := (1 - p.fraction) / p.progressRate
	eta := time.Duration(remaining * float64(time.Second))
	if eta > maxETA || eta < 0 {
		return maxETA
	}
	return eta
}

// FormatETA renders an ETA compactly ("45s", "2m30s", "1h15m").
func FormatETA(eta time.Duration) string {
	switch {
	case eta <= 0:
		return "calculating..."
	case eta < time.Second:
		return "< 1s"
	case eta < time.Minute:
		return fmt.Sprintf("%ds", int(eta.Seconds()))
	case eta < time.Hour:
		m := int(eta.Minutes())
		s := int(eta.Seconds()) % 60
		if s == 0 {
			return fmt.Sprintf("%dm", m)
		}
		return fmt.Sprintf("%dm%ds", m, s)
	default:
		h := int(eta.Hours())
		m := int(eta.Minutes()) % 60
		if m == 0 {
			return fmt.Sprintf("%dh", h)
		}
		return fmt.Sprintf("%dh%dm", h, m)
	}
}

// ProgressBar renders a bar of the given width filled to fraction.
func ProgressBar(fraction float64, length int) string {
	count := int(clamp01(fraction) * float64(length))
	var builder strings.Builder
	builder.Grow(length * 3)
	for i := 0; i < length; i++ {
		if i < count {
			builder.WriteRune('█')
		} else {
			builder.WriteRune('░')
		}
	}
	return builder.String()
}

// FormatProgressBarWithETA renders "[bar] 42.0% ETA: 12s".
func FormatProgressBarWithETA(fraction float64, eta time.Duration, width int) string {
	return fmt.Sprintf("[%s] %5.1f%% ETA: %s", ProgressBar(fraction, width), clamp01(fraction)*100, FormatETA(eta))
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
