package pool

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/vango-dev/taghelper/pkg/fragment"
)

// MetricsConfig configures the instrumented pool wrapper.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "taghelper").
	Namespace string

	// Subsystem is the metrics subsystem (default: "pool").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the instrumented pool wrapper.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "taghelper",
		Subsystem: "pool",
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Instrumented wraps a fragment.Pool with Prometheus metrics. Create one
// Instrumented per registry; metric names collide otherwise.
type Instrumented struct {
	inner fragment.Pool

	acquiresTotal prometheus.Counter
	releasesTotal prometheus.Counter
	bytesTotal    prometheus.Counter
	outstanding   prometheus.Gauge
}

// NewInstrumented wraps inner with acquire/release accounting. A nil
// inner wraps the shared Default pool.
func NewInstrumented(inner fragment.Pool, opts ...MetricsOption) *Instrumented {
	if inner == nil {
		inner = Default()
	}

	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}

	factory := promauto.With(config.Registry)

	return &Instrumented{
		inner: inner,

		acquiresTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "acquires_total",
			Help:        "Total number of scratch buffer acquisitions",
			ConstLabels: config.ConstLabels,
		}),

		releasesTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "releases_total",
			Help:        "Total number of scratch buffers returned to the pool",
			ConstLabels: config.ConstLabels,
		}),

		bytesTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "acquired_bytes_total",
			Help:        "Total bytes handed out by Acquire",
			ConstLabels: config.ConstLabels,
		}),

		outstanding: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "outstanding_buffers",
			Help:        "Scratch buffers currently acquired and not yet released",
			ConstLabels: config.ConstLabels,
		}),
	}
}

// Acquire implements fragment.Pool.
func (p *Instrumented) Acquire(size int) []byte {
	buf := p.inner.Acquire(size)
	p.acquiresTotal.Inc()
	p.bytesTotal.Add(float64(len(buf)))
	p.outstanding.Inc()
	return buf
}

// Release implements fragment.Pool.
func (p *Instrumented) Release(buf []byte) {
	p.inner.Release(buf)
	p.releasesTotal.Inc()
	p.outstanding.Dec()
}
