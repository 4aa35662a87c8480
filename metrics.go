package segvec

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting write-path metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Reads are never instrumented; they stay free of shared writes.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    appends  prometheus.Counter
//	    segments prometheus.Gauge
//	}
//
//	func (p *PrometheusCollector) RecordGrow(segment, capacity int) {
//	    p.segments.Set(float64(segment + 1))
//	}
type MetricsCollector interface {
	// RecordAppend is called after each single-element append.
	// duration includes waiting for the writer lock; err is nil if successful.
	RecordAppend(duration time.Duration, err error)

	// RecordBatchAppend is called after each non-empty batch append.
	// count is the batch size, appended the number of elements published.
	RecordBatchAppend(count, appended int, duration time.Duration)

	// RecordGrow is called when a new segment is allocated.
	RecordGrow(segment, capacity int)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAppend(time.Duration, error)         {}
func (NoopMetricsCollector) RecordBatchAppend(int, int, time.Duration) {}
func (NoopMetricsCollector) RecordGrow(int, int)                       {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	AppendCount       atomic.Int64
	AppendErrors      atomic.Int64
	AppendTotalNanos  atomic.Int64
	BatchAppendCount  atomic.Int64
	BatchAppendItems  atomic.Int64
	BatchAppendFailed atomic.Int64
	SegmentsAllocated atomic.Int64
	SlotsAllocated    atomic.Int64
}

// RecordAppend implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAppend(duration time.Duration, err error) {
	b.AppendCount.Add(1)
	b.AppendTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.AppendErrors.Add(1)
	}
}

// RecordBatchAppend implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBatchAppend(count, appended int, _ time.Duration) {
	b.BatchAppendCount.Add(1)
	b.BatchAppendItems.Add(int64(appended))
	b.BatchAppendFailed.Add(int64(count - appended))
}

// RecordGrow implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGrow(_ int, capacity int) {
	b.SegmentsAllocated.Add(1)
	b.SlotsAllocated.Add(int64(capacity))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		AppendCount:       b.AppendCount.Load(),
		AppendErrors:      b.AppendErrors.Load(),
		AppendAvgNanos:    b.getAvgAppendNanos(),
		BatchAppendCount:  b.BatchAppendCount.Load(),
		BatchAppendItems:  b.BatchAppendItems.Load(),
		BatchAppendFailed: b.BatchAppendFailed.Load(),
		SegmentsAllocated: b.SegmentsAllocated.Load(),
		SlotsAllocated:    b.SlotsAllocated.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgAppendNanos() int64 {
	count := b.AppendCount.Load()
	if count == 0 {
		return 0
	}
	return b.AppendTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	AppendCount       int64
	AppendErrors      int64
	AppendAvgNanos    int64
	BatchAppendCount  int64
	BatchAppendItems  int64
	BatchAppendFailed int64
	SegmentsAllocated int64 // excludes the first segment, which is allocated by New
	SlotsAllocated    int64
}
