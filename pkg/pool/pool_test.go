package pool

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func metricCounterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		t.Fatalf("counter Write() error: %v", err)
	}
	if m.Counter == nil {
		t.Fatal("expected counter metric to have Counter field")
	}
	return m.GetCounter().GetValue()
}

func metricGaugeValue(t *testing.T, g prometheus.Gauge) float64 {
	t.Helper()
	var m dto.Metric
	if err := g.Write(&m); err != nil {
		t.Fatalf("gauge Write() error: %v", err)
	}
	if m.Gauge == nil {
		t.Fatal("expected gauge metric to have Gauge field")
	}
	return m.GetGauge().GetValue()
}

func TestSizedAcquireLength(t *testing.T) {
	p := NewSized()

	tests := []struct {
		size    int
		wantMin int
	}{
		{1, 1},
		{64, 64},
		{65, 65},
		{1000, 1000},
		{70000, 70000}, // beyond the largest class
	}

	for _, tt := range tests {
		buf := p.Acquire(tt.size)
		if len(buf) < tt.wantMin {
			t.Errorf("Acquire(%d) returned %d bytes", tt.size, len(buf))
		}
		p.Release(buf)
	}
}

func TestSizedReuse(t *testing.T) {
	p := NewSized()

	buf := p.Acquire(100)
	if cap(buf) != 256 {
		t.Fatalf("Acquire(100) should round up to the 256 class, got cap %d", cap(buf))
	}
	p.Release(buf)

	// sync.Pool gives no reuse guarantee, but the returned slice must at
	// least come back with the class length.
	again := p.Acquire(200)
	if len(again) != 256 {
		t.Errorf("Acquire(200) length = %d, want 256", len(again))
	}
	p.Release(again)
}

func TestSizedReleaseForeignSlice(t *testing.T) {
	p := NewSized()

	// A slice that matches no class is silently discarded.
	p.Release(make([]byte, 100))
	p.Release(nil)
}

func TestDefaultIsShared(t *testing.T) {
	if Default() != Default() {
		t.Error("Default must return the same pool instance")
	}
}

func TestInstrumentedCounts(t *testing.T) {
	reg := prometheus.NewRegistry()
	p := NewInstrumented(NewSized(), WithRegistry(reg))

	a := p.Acquire(10)
	b := p.Acquire(500)

	if got := metricCounterValue(t, p.acquiresTotal); got != 2 {
		t.Errorf("acquires_total = %v, want 2", got)
	}
	if got := metricGaugeValue(t, p.outstanding); got != 2 {
		t.Errorf("outstanding_buffers = %v, want 2", got)
	}
	if got := metricCounterValue(t, p.bytesTotal); got != float64(len(a)+len(b)) {
		t.Errorf("acquired_bytes_total = %v, want %d", got, len(a)+len(b))
	}

	p.Release(a)
	p.Release(b)

	if got := metricCounterValue(t, p.releasesTotal); got != 2 {
		t.Errorf("releases_total = %v, want 2", got)
	}
	if got := metricGaugeValue(t, p.outstanding); got != 0 {
		t.Errorf("outstanding_buffers = %v, want 0", got)
	}
}

func TestInstrumentedNilInner(t *testing.T) {
	reg := prometheus.NewRegistry()
	p := NewInstrumented(nil, WithRegistry(reg), WithNamespace("test"), WithSubsystem("scratch"))

	buf := p.Acquire(32)
	if len(buf) < 32 {
		t.Errorf("Acquire(32) returned %d bytes", len(buf))
	}
	p.Release(buf)
}
