package format

import (
	"fmt"
	"time"
)

// ElapsedMillis returns d in whole milliseconds, truncated, as printed in the
// run result lines. Negative durations count as zero.
func ElapsedMillis(d time.Duration) uint64 {
	if d <= 0 {
		return 0
	}
	return uint64(d / time.Millisecond)
}

// FormatRunDuration renders a run duration for the comparison table and the
// dashboard: microseconds below a millisecond, whole milliseconds below a
// second, seconds rounded to the millisecond above that.
func FormatRunDuration(d time.Duration) string {
	switch {
	case d < time.Microsecond:
		return "< 1µs"
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.Round(time.Millisecond).String()
}

// FormatSpeedup renders how many times faster fast ran than slow, e.g.
// "4.00x". A non-positive fast duration has no meaningful ratio.
func FormatSpeedup(fast, slow time.Duration) string {
	if fast <= 0 {
		return "n/a"
	}
	return fmt.Sprintf("%.2fx", float64(slow)/float64(fast))
}
