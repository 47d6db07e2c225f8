package genidx

import (
	"sync/atomic"
)

// MetricsCollector defines an interface for collecting allocator and cache
// metrics. Implement this interface to integrate with monitoring systems like
// Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    rescans prometheus.Counter
//	}
//
//	func (p *PrometheusCollector) RecordSync(kind genidx.CmpKind, removed int) {
//	    if kind == genidx.Outdated {
//	        p.rescans.Inc()
//	    }
//	}
type MetricsCollector interface {
	// RecordCreate is called after each successful create.
	// reused is true when the index came from the free list.
	RecordCreate(reused bool)

	// RecordKill is called after each kill that actually killed an id.
	RecordKill()

	// RecordSync is called after a dependent cache synchronized.
	// removed is the number of entries purged.
	RecordSync(kind CmpKind, removed int)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordCreate(bool)       {}
func (NoopMetricsCollector) RecordKill()             {}
func (NoopMetricsCollector) RecordSync(CmpKind, int) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	CreateCount   atomic.Int64
	ReuseCount    atomic.Int64
	KillCount     atomic.Int64
	SyncedCount   atomic.Int64
	OffByOneCount atomic.Int64
	OutdatedCount atomic.Int64
	PurgedCount   atomic.Int64
}

// RecordCreate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordCreate(reused bool) {
	b.CreateCount.Add(1)
	if reused {
		b.ReuseCount.Add(1)
	}
}

// RecordKill implements MetricsCollector.
func (b *BasicMetricsCollector) RecordKill() {
	b.KillCount.Add(1)
}

// RecordSync implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSync(kind CmpKind, removed int) {
	switch kind {
	case Synced:
		b.SyncedCount.Add(1)
	case OffByOne:
		b.OffByOneCount.Add(1)
	case Outdated:
		b.OutdatedCount.Add(1)
	}
	b.PurgedCount.Add(int64(removed))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		CreateCount:   b.CreateCount.Load(),
		ReuseCount:    b.ReuseCount.Load(),
		KillCount:     b.KillCount.Load(),
		SyncedCount:   b.SyncedCount.Load(),
		OffByOneCount: b.OffByOneCount.Load(),
		OutdatedCount: b.OutdatedCount.Load(),
		PurgedCount:   b.PurgedCount.Load(),
	}
}

// BasicMetricsStats is a point-in-time snapshot of BasicMetricsCollector.
type BasicMetricsStats struct {
	CreateCount   int64
	ReuseCount    int64
	KillCount     int64
	SyncedCount   int64
	OffByOneCount int64
	OutdatedCount int64
	PurgedCount   int64
}
