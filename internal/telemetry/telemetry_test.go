package telemetry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/katalvlaran/graphty/internal/telemetry"
)

func TestInitWithExporter(t *testing.T) {
	exp := tracetest.NewInMemoryExporter()
	tp, err := telemetry.Init(context.Background(), telemetry.Config{
		ServiceName:    "graphty-test",
		ServiceVersion: "0.0.0",
		Exporter:       exp,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	_, span := otel.Tracer("test").Start(context.Background(), "op")
	span.End()

	spans := exp.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "op", spans[0].Name)
	var service string
	for _, kv := range spans[0].Resource.Attributes() {
		if kv.Key == "service.name" {
			service = kv.Value.AsString()
		}
	}
	assert.Equal(t, "graphty-test", service)
}

func TestInitDiscard(t *testing.T) {
	t.Setenv(telemetry.EndpointEnv, "")
	tp, err := telemetry.Init(context.Background(), telemetry.Config{ServiceName: "graphty-test"})
	require.NoError(t, err)

	_, span := otel.Tracer("test").Start(context.Background(), "discarded")
	span.End()
	assert.NoError(t, tp.Shutdown(context.Background()))
}
