package clubadmin

import (
	"testing"
	"time"
)

func TestMetricsDisabledIsFree(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: false})

	m.Inc(MetricRequestSuccess)
	m.Observe(MetricRequestLatency, 10*time.Millisecond)

	if got := m.Value(MetricRequestSuccess); got != 0 {
		t.Errorf("disabled counter = %d, want 0", got)
	}
	snap := m.Snapshot()
	if len(snap.Counters) != 0 || len(snap.Histograms) != 0 {
		t.Errorf("disabled snapshot not empty: %+v", snap)
	}
}

func TestMetricsNilSafe(t *testing.T) {
	var m *Metrics
	m.Inc(MetricRequestSuccess)
	m.Observe(MetricRequestLatency, time.Millisecond)
	if m.Value(MetricRequestSuccess) != 0 {
		t.Error("nil Value should be 0")
	}
	if m.Enabled() || m.LatencyEnabled() {
		t.Error("nil registry should report disabled")
	}
	_ = m.Snapshot()
}

func TestMetricsCountersAndSnapshot(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: true, EnableLatencyHistograms: true})

	m.Inc(MetricLoginSuccess)
	m.Inc(MetricLoginSuccess)
	m.Inc(MetricForcedLogout)
	m.Observe(MetricRequestLatency, 3*time.Millisecond)
	m.Observe(MetricRequestLatency, 70*time.Millisecond)

	if got := m.Value(MetricLoginSuccess); got != 2 {
		t.Errorf("login success = %d, want 2", got)
	}

	snap := m.Snapshot()
	if snap.Counters[MetricForcedLogout] != 1 {
		t.Errorf("snapshot forced logout = %d", snap.Counters[MetricForcedLogout])
	}
	buckets := snap.Histograms[MetricRequestLatency]
	if len(buckets) != histBucketCount {
		t.Fatalf("bucket count = %d", len(buckets))
	}
	if buckets[0] != 1 || buckets[4] != 1 {
		t.Errorf("buckets = %v, want samples in 5ms and 100ms buckets", buckets)
	}
}

func TestMetricsObserveOnlyLatency(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: true, EnableLatencyHistograms: true})

	// Counters reject Observe; nothing should land anywhere.
	m.Observe(MetricLoginSuccess, time.Millisecond)
	snap := m.Snapshot()
	if _, ok := snap.Histograms[MetricLoginSuccess]; ok {
		t.Error("counter metric must not grow a histogram")
	}
}

func TestBucketIndex(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want int
	}{
		{time.Millisecond, 0},
		{5 * time.Millisecond, 0},
		{9 * time.Millisecond, 1},
		{25 * time.Millisecond, 2},
		{40 * time.Millisecond, 3},
		{100 * time.Millisecond, 4},
		{200 * time.Millisecond, 5},
		{400 * time.Millisecond, 6},
		{2 * time.Second, 7},
	}
	for _, tc := range tests {
		if got := bucketIndex(tc.d); got != tc.want {
			t.Errorf("bucketIndex(%v) = %d, want %d", tc.d, got, tc.want)
		}
	}
}
