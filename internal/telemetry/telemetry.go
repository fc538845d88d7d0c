// Package telemetry provides optional OpenTelemetry tracing of game sessions.
// Tracing is enabled only when OTEL_EXPORTER_OTLP_ENDPOINT is set.
package telemetry

import (
	"context"
	"fmt"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const (
	serviceName    = "tui-bomber"
	serviceVersion = "0.1.0"

	// EnvEndpoint switches tracing on.
	EnvEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
)

// Enabled reports whether an OTLP endpoint is configured.
func Enabled() bool {
	return os.Getenv(EnvEndpoint) != ""
}

// Setup installs a global tracer provider exporting over OTLP HTTP. The
// exporter takes its settings from the standard OTEL_* variables.
// Without an endpoint nothing is installed and shutdown is a no-op.
func Setup(ctx context.Context) (shutdown func(context.Context) error, err error) {
	if !Enabled() {
		return func(context.Context) error { return nil }, nil
	}

	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating OTLP exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(newResource()),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

// newResource identifies the game in exported spans. Session and level
// details travel on the spans themselves.
func newResource() *resource.Resource {
	return resource.NewSchemaless(
		attribute.String("service.name", serviceName),
		attribute.String("service.version", serviceVersion),
	)
}

// tracerName scopes a component name under the service.
func tracerName(component string) string {
	return serviceName + "/" + component
}

// Tracer returns the tracer for a component such as "tui", or a no-op
// tracer when tracing is disabled.
func Tracer(component string) trace.Tracer {
	if !Enabled() {
		return NoopTracer()
	}
	return otel.GetTracerProvider().Tracer(tracerName(component))
}

// NoopTracer returns a tracer that records nothing.
func NoopTracer() trace.Tracer {
	return noop.NewTracerProvider().Tracer(tracerName("noop"))
}
