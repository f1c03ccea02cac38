package goSuite

import (
	"testing"
	"time"
)

func TestMetricsDisabledIsNoOp(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: false})

	m.Inc(MetricTokenCacheHit)
	m.Observe(MetricRemoteLatency, time.Millisecond)

	if m.Enabled() {
		t.Fatal("metrics report enabled")
	}
	if got := m.Value(MetricTokenCacheHit); got != 0 {
		t.Fatalf("counter = %d, want 0", got)
	}

	snap := m.Snapshot()
	if len(snap.Counters) != 0 || len(snap.Histograms) != 0 {
		t.Fatalf("snapshot = %+v, want empty", snap)
	}
}

func TestMetricsCounters(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: true})

	m.Inc(MetricTokenRefreshSuccess)
	m.Inc(MetricTokenRefreshSuccess)
	m.Inc(MetricTicketFetchFailure)

	if got := m.Value(MetricTokenRefreshSuccess); got != 2 {
		t.Fatalf("refresh successes = %d, want 2", got)
	}
	if got := m.Value(MetricTicketFetchFailure); got != 1 {
		t.Fatalf("ticket failures = %d, want 1", got)
	}
	if got := m.Value(MetricTokenCacheHit); got != 0 {
		t.Fatalf("cache hits = %d, want 0", got)
	}
}

func TestMetricsLatencyHistogram(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: true, EnableLatencyHistograms: true})

	m.Observe(MetricRemoteLatency, 3*time.Millisecond)
	m.Observe(MetricRemoteLatency, 30*time.Millisecond)
	m.Observe(MetricRemoteLatency, 2*time.Second)
	// Non-latency metric IDs are ignored by Observe.
	m.Observe(MetricTokenCacheHit, time.Millisecond)

	snap := m.Snapshot()
	buckets, ok := snap.Histograms[MetricRemoteLatency]
	if !ok {
		t.Fatal("missing latency histogram")
	}
	if buckets[0] != 1 || buckets[2] != 1 || buckets[7] != 1 {
		t.Fatalf("buckets = %v", buckets)
	}
	if _, ok := snap.Histograms[MetricTokenCacheHit]; ok {
		t.Fatal("histogram recorded for a counter metric")
	}
}

func TestMetricsLatencyDisabledByDefault(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: true})

	m.Observe(MetricRemoteLatency, time.Millisecond)

	snap := m.Snapshot()
	if len(snap.Histograms) != 0 {
		t.Fatalf("histograms = %+v, want none", snap.Histograms)
	}
}

func TestBucketIndexBoundaries(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want int
	}{
		{0, 0},
		{5 * time.Millisecond, 0},
		{6 * time.Millisecond, 1},
		{10 * time.Millisecond, 1},
		{25 * time.Millisecond, 2},
		{50 * time.Millisecond, 3},
		{100 * time.Millisecond, 4},
		{250 * time.Millisecond, 5},
		{500 * time.Millisecond, 6},
		{501 * time.Millisecond, 7},
		{time.Minute, 7},
	}

	for _, tc := range cases {
		if got := bucketIndex(tc.d); got != tc.want {
			t.Errorf("bucketIndex(%v) = %d, want %d", tc.d, got, tc.want)
		}
	}
}
