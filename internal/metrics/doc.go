// Package metrics collects run statistics: Prometheus counters and
// histograms for each enumeration run, and runtime memory snapshots.
package metrics
