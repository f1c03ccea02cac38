package goSuite

import (
	"github.com/MrEthical07/goSuite/state"
	"github.com/MrEthical07/goSuite/ticket"
	"github.com/MrEthical07/goSuite/wire"
)

// Broker defines a public type used by goSuite APIs.
//
// Broker instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
// The cached token and ticket slots are the only mutable state; both
// are owned by the broker and guarded by a single mutex, with refresh
// round trips coalesced across concurrent callers.
type Broker struct {
	config  Config
	remote  *wire.Client
	tickets ticket.Source
	state   *state.Manager
	cache   *tokenCache
	audit   *auditDispatcher
	metrics *Metrics
}

// Close describes the close operation and its observable behavior.
//
// Close may return an error when input validation, dependency calls, or security checks fail.
// Close does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Broker) Close() {
	if b == nil {
		return
	}
	if b.audit != nil {
		b.audit.Close()
	}
}

// AuditDropped describes the auditdropped operation and its observable behavior.
//
// AuditDropped may return an error when input validation, dependency calls, or security checks fail.
// AuditDropped does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Broker) AuditDropped() uint64 {
	if b == nil || b.audit == nil {
		return 0
	}
	return b.audit.Dropped()
}

// MetricsSnapshot describes the metricssnapshot operation and its observable behavior.
//
// MetricsSnapshot may return an error when input validation, dependency calls, or security checks fail.
// MetricsSnapshot does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Broker) MetricsSnapshot() MetricsSnapshot {
	if b == nil || b.metrics == nil {
		return MetricsSnapshot{
			Counters:   map[MetricID]uint64{},
			Histograms: map[MetricID][]uint64{},
		}
	}
	return b.metrics.Snapshot()
}

func (b *Broker) metricInc(id MetricID) {
	if b == nil || b.metrics == nil {
		return
	}
	b.metrics.Inc(id)
}
