package hausdorff

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordSearch is called after each public search call.
	// stats holds the work done, err is nil if successful.
	RecordSearch(mode Mode, stats Stats, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordSearch(Mode, Stats, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	SearchCount      atomic.Int64
	SearchErrors     atomic.Int64
	SearchTotalNanos atomic.Int64
	Comparisons      atomic.Int64
	Pruned           atomic.Int64
}

// RecordSearch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSearch(_ Mode, stats Stats, duration time.Duration, err error) {
	b.SearchCount.Add(1)
	b.SearchTotalNanos.Add(duration.Nanoseconds())
	b.Comparisons.Add(int64(stats.Comparisons))
	b.Pruned.Add(int64(stats.Pruned))
	if err != nil {
		b.SearchErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	count := b.SearchCount.Load()
	var avg int64
	if count > 0 {
		avg = b.SearchTotalNanos.Load() / count
	}
	return BasicMetricsStats{
		SearchCount:    count,
		SearchErrors:   b.SearchErrors.Load(),
		SearchAvgNanos: avg,
		Comparisons:    b.Comparisons.Load(),
		Pruned:         b.Pruned.Load(),
	}
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	SearchCount    int64
	SearchErrors   int64
	SearchAvgNanos int64
	Comparisons    int64
	Pruned         int64
}
