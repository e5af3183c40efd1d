package emit

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/taghelper/pkg/fragment"
)

// Default tracer name for taghelper emission.
const defaultTracerName = "taghelper"

// TraceConfig configures traced emission.
type TraceConfig struct {
	// TracerName is the name of the tracer (default: "taghelper").
	TracerName string

	// Attributes are added to every emission span.
	Attributes []attribute.KeyValue

	// tracer is the resolved tracer instance.
	tracer trace.Tracer
}

// TraceOption configures traced emission.
type TraceOption func(*TraceConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) TraceOption {
	return func(c *TraceConfig) {
		c.TracerName = name
	}
}

// WithAttributes adds constant attributes to every emission span.
func WithAttributes(attrs ...attribute.KeyValue) TraceOption {
	return func(c *TraceConfig) {
		c.Attributes = append(c.Attributes, attrs...)
	}
}

// Tracer wraps emission with OpenTelemetry spans. It uses the global
// tracer provider; configure that in main() before rendering.
type Tracer struct {
	config TraceConfig
}

// NewTracer creates a Tracer.
func NewTracer(opts ...TraceOption) *Tracer {
	config := TraceConfig{TracerName: defaultTracerName}
	for _, opt := range opts {
		opt(&config)
	}
	config.tracer = otel.Tracer(config.TracerName)
	return &Tracer{config: config}
}

// Emit drains the buffer into sink inside a span that records the
// fragment count and byte size of the emitted content. The buffer is not
// cleared.
func (t *Tracer) Emit(ctx context.Context, b *fragment.Buffer, sink fragment.Sink) error {
	attrs := []attribute.KeyValue{
		attribute.Int("taghelper.fragments", len(b.Fragments())),
		attribute.Int("taghelper.bytes", b.Len()),
	}
	attrs = append(attrs, t.config.Attributes...)

	_, span := t.config.tracer.Start(ctx, "taghelper.emit",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attrs...),
	)
	defer span.End()

	if err := b.Emit(sink); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.SetStatus(codes.Ok, "")
	return nil
}
