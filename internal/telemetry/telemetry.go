// Package telemetry traces friend and bill operations with OpenTelemetry.
// Export is optional; without an OTLP endpoint every span is a no-op.
package telemetry

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const instrumentationName = "splitbill/ui"

// Span names.
const (
	SpanAddFriend    = "friend.add"
	SpanSelectFriend = "friend.select"
	SpanSplitBill    = "bill.split"
)

// Tracer starts spans for controller operations.
type Tracer struct {
	provider *sdktrace.TracerProvider
	tracer   oteltrace.Tracer
}

// Disabled returns a tracer whose spans are dropped.
func Disabled() *Tracer {
	return &Tracer{tracer: noop.NewTracerProvider().Tracer(instrumentationName)}
}

// New creates an OTLP/HTTP exporting tracer, or Disabled if endpoint is empty.
// endpoint may be host:port or a full URL.
func New(ctx context.Context, endpoint, serviceName string) (*Tracer, error) {
	if endpoint == "" {
		return Disabled(), nil
	}

	opts := []otlptracehttp.Option{otlptracehttp.WithInsecure()}
	if strings.Contains(endpoint, "://") {
		opts = []otlptracehttp.Option{otlptracehttp.WithEndpointURL(endpoint)}
	} else {
		opts = append(opts, otlptracehttp.WithEndpoint(endpoint))
	}
	exporter, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, err
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)
	return NewWithProvider(sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)), nil
}

// NewWithProvider wraps an existing SDK provider. Shutdown shuts it down.
func NewWithProvider(p *sdktrace.TracerProvider) *Tracer {
	return &Tracer{provider: p, tracer: p.Tracer(instrumentationName)}
}

// Start begins a span. A nil Tracer behaves like Disabled.
func (t *Tracer) Start(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, oteltrace.Span) {
	if t == nil {
		t = Disabled()
	}
	return t.tracer.Start(ctx, name, oteltrace.WithAttributes(attrs...))
}

// Shutdown flushes pending spans and stops the exporter.
func (t *Tracer) Shutdown(ctx context.Context) error {
	if t == nil || t.provider == nil {
		return nil
	}
	return t.provider.Shutdown(ctx)
}

// FriendID tags a span with the friend it touched.
func FriendID(id string) attribute.KeyValue {
	return attribute.String("splitbill.friend.id", id)
}

// Delta tags a span with a balance change.
func Delta(v float64) attribute.KeyValue {
	return attribute.Float64("splitbill.delta", v)
}

// Balance tags a span with a resulting balance.
func Balance(v float64) attribute.KeyValue {
	return attribute.Float64("splitbill.balance", v)
}

// Selected tags a span with whether a friend ended up selected.
func Selected(v bool) attribute.KeyValue {
	return attribute.Bool("splitbill.selected", v)
}
