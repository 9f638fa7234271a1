// Package telemetry bootstraps the OpenTelemetry tracer provider used by
// algorithm runs.
package telemetry

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

// EndpointEnv is consulted when Config.Endpoint is empty.
const EndpointEnv = "OTEL_EXPORTER_OTLP_ENDPOINT"

// Config selects the exporter. With no endpoint, spans are recorded and
// discarded.
type Config struct {
	ServiceName    string
	ServiceVersion string
	Endpoint       string

	// Exporter overrides endpoint selection; spans are exported synchronously.
	Exporter sdktrace.SpanExporter
}

// Init installs a global tracer provider and propagator. Callers flush
// pending spans with Shutdown.
func Init(ctx context.Context, cfg Config) (*sdktrace.TracerProvider, error) {
	res, err := resource.Merge(
		resource.Default(),
		resource.NewSchemaless(
			semconv.ServiceName(cfg.ServiceName),
			semconv.ServiceVersion(cfg.ServiceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("telemetry: resource: %w", err)
	}

	var spanOpt sdktrace.TracerProviderOption
	switch endpoint := endpointOf(cfg); {
	case cfg.Exporter != nil:
		spanOpt = sdktrace.WithSyncer(cfg.Exporter)
	case endpoint != "":
		exp, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(endpoint))
		if err != nil {
			return nil, fmt.Errorf("telemetry: otlp exporter: %w", err)
		}
		spanOpt = sdktrace.WithBatcher(exp)
	default:
		exp, err := stdouttrace.New(stdouttrace.WithWriter(io.Discard))
		if err != nil {
			return nil, fmt.Errorf("telemetry: stdout exporter: %w", err)
		}
		spanOpt = sdktrace.WithBatcher(exp)
	}

	tp := sdktrace.NewTracerProvider(spanOpt, sdktrace.WithResource(res))
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{}, propagation.Baggage{},
	))

	return tp, nil
}

func endpointOf(cfg Config) string {
	if cfg.Endpoint != "" {
		return cfg.Endpoint
	}

	return os.Getenv(EndpointEnv)
}
