package sysmon

import (
	"strings"
	"testing"
)

func TestSample_ReturnsValidRanges(t *testing.T) {
	s := Sample()
	if s.CPUPercent < 0 || s.CPUPercent > 100 {
		t.Errorf("CPUPercent out of range: %f", s.CPUPercent)
	}
	if s.MemPercent < 0 || s.MemPercent > 100 {
		t.Errorf("MemPercent out of range: %f", s.MemPercent)
	}
	if s.LogicalCPUs < 1 {
		t.Errorf("LogicalCPUs = %d, want >= 1", s.LogicalCPUs)
	}
	if s.Goroutines < 1 {
		t.Errorf("Goroutines = %d, want >= 1", s.Goroutines)
	}
}

func TestStats_String(t *testing.T) {
	t.Parallel()
	got := Stats{CPUPercent: 12.5, MemPercent: 40, LogicalCPUs: 8, Goroutines: 3}.String()
	want := "CPU  12.5% | MEM  40.0% | 8 cores | 3 goroutines"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if !strings.Contains(Sample().String(), "goroutines") {
		t.Error("sampled stats should render")
	}
}
