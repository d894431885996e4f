// Package sysmon samples host load while an enumeration is running.
package sysmon

import (
	"fmt"
	"runtime"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// Stats holds a single snapshot of host and process resource usage.
type Stats struct {
	CPUPercent  float64 // 0.0 .. 100.0
	MemPercent  float64 // 0.0 .. 100.0
	LogicalCPUs int
	Goroutines  int
}

// Sample collects a single snapshot. CPU uses interval=0 (delta since the
// previous call). Host fields are left at zero when gopsutil cannot read them.
func Sample() Stats {
	s := Stats{Goroutines: runtime.NumGoroutine()}
	if pcts, err := cpu.Percent(0, false); err == nil && len(pcts) > 0 {
		s.CPUPercent = pcts[0]
	}
	if vmem, err := mem.VirtualMemory(); err == nil && vmem != nil {
		s.MemPercent = vmem.UsedPercent
	}
	if n, err := cpu.Counts(true); err == nil {
		s.LogicalCPUs = n
	} else {
		s.LogicalCPUs = runtime.NumCPU()
	}
	return s
}

// String renders the snapshot on one line for status bars and debug logs.
func (s Stats) String() string {
	return fmt.Sprintf("CPU %5.1f%% | MEM %5.1f%% | %d cores | %d goroutines",
		s.CPUPercent, s.MemPercent, s.LogicalCPUs, s.Goroutines)
}
