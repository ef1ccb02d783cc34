// Package observability provides OpenTelemetry tracing for rostergen. When
// tracing is enabled finished spans are exported as JSON to stderr; when it
// is disabled every span is a no-op.
package observability

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// TracingConfig contains tracing configuration
type TracingConfig struct {
	Enabled        bool
	ServiceName    string
	ServiceVersion string
	// Output receives exported spans; stderr when nil
	Output io.Writer
	// PrettyPrint indents exported spans
	PrettyPrint bool
}

// Tracing owns a tracer provider for one process.
type Tracing struct {
	provider trace.TracerProvider
	sdk      *sdktrace.TracerProvider
	tracer   trace.Tracer
}

// NewTracing builds the tracer provider. The caller must Shutdown it to
// flush pending spans.
func NewTracing(config TracingConfig) (*Tracing, error) {
	name := config.ServiceName
	if name == "" {
		name = "rostergen"
	}
	if !config.Enabled {
		p := noop.NewTracerProvider()
		return &Tracing{provider: p, tracer: p.Tracer(name)}, nil
	}

	res, err := resource.New(context.Background(),
		resource.WithAttributes(
			semconv.ServiceNameKey.String(name),
			semconv.ServiceVersionKey.String(config.ServiceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	out := config.Output
	if out == nil {
		out = os.Stderr
	}
	opts := []stdouttrace.Option{stdouttrace.WithWriter(out)}
	if config.PrettyPrint {
		opts = append(opts, stdouttrace.WithPrettyPrint())
	}
	exporter, err := stdouttrace.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create stdout exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithBatcher(exporter),
	)
	return &Tracing{provider: tp, sdk: tp, tracer: tp.Tracer(name)}, nil
}

// Tracer returns the tracer for rostergen spans.
func (t *Tracing) Tracer() trace.Tracer {
	return t.tracer
}

// Shutdown flushes and stops the exporter. It is a no-op when tracing is
// disabled.
func (t *Tracing) Shutdown(ctx context.Context) error {
	if t.sdk == nil {
		return nil
	}
	return t.sdk.Shutdown(ctx)
}

// Trace runs fn inside a span named operation. The span records fn's error
// and status.
func Trace(ctx context.Context, tracer trace.Tracer, operation string, fn func(ctx context.Context) error, attrs ...attribute.KeyValue) error {
	ctx, span := tracer.Start(ctx, operation, trace.WithAttributes(attrs...))
	defer span.End()

	if err := fn(ctx); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	span.SetStatus(codes.Ok, "")
	return nil
}

// AddAttributes sets attributes on the span in ctx, if any.
func AddAttributes(ctx context.Context, attrs ...attribute.KeyValue) {
	trace.SpanFromContext(ctx).SetAttributes(attrs...)
}
