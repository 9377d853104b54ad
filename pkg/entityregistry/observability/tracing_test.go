package observability

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/randalmurphal/entityregistry/pkg/entityregistry/event"
)

// setupTracingTest creates a span manager backed by an in-memory exporter.
func setupTracingTest(t *testing.T) (*tracetest.InMemoryExporter, SpanManager) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	t.Cleanup(func() {
		if err := tp.Shutdown(context.Background()); err != nil {
			t.Logf("Error shutting down tracer provider: %v", err)
		}
	})
	return exporter, NewSpanManagerFromProvider(tp)
}

func TestStartNotificationSpan(t *testing.T) {
	exporter, spans := setupTracingTest(t)

	_, span := spans.StartNotificationSpan(context.Background(), "vehicles", event.AddedSuccess, "car-1")
	require.NotNil(t, span)
	spans.EndSpanWithError(span, nil)

	got := exporter.GetSpans()
	require.Len(t, got, 1)
	assert.Equal(t, "entityregistry.added_success", got[0].Name)
	assert.Equal(t, codes.Ok, got[0].Status.Code)

	attrs := map[string]string{}
	for _, attr := range got[0].Attributes {
		attrs[string(attr.Key)] = attr.Value.AsString()
	}
	assert.Equal(t, "vehicles", attrs["registry.name"])
	assert.Equal(t, "car-1", attrs["entity.key"])
}

func TestEndSpanWithError(t *testing.T) {
	exporter, spans := setupTracingTest(t)

	_, span := spans.StartNotificationSpan(context.Background(), "vehicles", event.RemovedFailed, "car-1")
	spans.EndSpanWithError(span, errors.New("not found"))

	got := exporter.GetSpans()
	require.Len(t, got, 1)
	assert.Equal(t, codes.Error, got[0].Status.Code)
	assert.Equal(t, "not found", got[0].Status.Description)
	require.Len(t, got[0].Events, 1)
	assert.Equal(t, "exception", got[0].Events[0].Name)

	assert.NotPanics(t, func() { spans.EndSpanWithError(nil, nil) })
}

func TestSpanObserver(t *testing.T) {
	exporter, spans := setupTracingTest(t)

	obs := SpanObserver[string](spans, "vehicles")
	require.NotNil(t, obs)

	obs.Observe(event.Notification[string]{Kind: event.UpdatedSuccess, Key: "a"})
	obs.Observe(event.Notification[string]{Kind: event.UpdatedFailed, Key: "b", Err: errors.New("missing")})

	got := exporter.GetSpans()
	require.Len(t, got, 2)
	assert.Equal(t, "entityregistry.updated_success", got[0].Name)
	assert.Equal(t, "entityregistry.updated_failed", got[1].Name)
	assert.Equal(t, codes.Error, got[1].Status.Code)

	assert.Nil(t, SpanObserver[string](nil, "vehicles"))
}

func TestNoopSpanManager(t *testing.T) {
	var spans SpanManager = NoopSpanManager{}
	ctx := context.Background()

	got, span := spans.StartNotificationSpan(ctx, "r", event.AddedSuccess, "k")
	assert.Equal(t, ctx, got)
	assert.False(t, span.IsRecording())
	spans.EndSpanWithError(span, errors.New("ignored"))
}
