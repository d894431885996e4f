package tui

// sparklineChars maps levels 0..7 to Unicode block elements.
var sparklineChars = [8]rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// History keeps the most recent percentage samples for a sparkline.
type History struct {
	samples []float64
	size    int
}

// NewHistory returns a history holding at most size samples.
func NewHistory(size int) *History {
	return &History{size: max(size, 1)}
}

// Push appends a sample, dropping the oldest once the history is full.
func (h *History) Push(v float64) {
	if len(h.samples) == h.size {
		copy(h.samples, h.samples[1:])
		h.samples = h.samples[:h.size-1]
	}
	h.samples = append(h.samples, v)
}

// Last returns the newest sample, or 0 if empty.
func (h *History) Last() float64 {
	if len(h.samples) == 0 {
		return 0
	}
	return h.samples[len(h.samples)-1]
}

// Values returns the samples oldest first. The slice must not be modified.
func (h *History) Values() []float64 {
	return h.samples
}

// RenderSparkline converts values in [0, 100] into block characters.
func RenderSparkline(values []float64) string {
	runes := make([]rune, len(values))
	for i, v := range values {
		v = min(max(v, 0), 100)
		runes[i] = sparklineChars[min(int(v/100*7), 7)]
	}
	return string(runes)
}
