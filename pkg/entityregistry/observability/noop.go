package observability

import (
	"context"

	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/randalmurphal/entityregistry/pkg/entityregistry/event"
)

// NoopMetrics is a MetricsRecorder that does nothing.
type NoopMetrics struct{}

// Compile-time interface check.
var _ MetricsRecorder = NoopMetrics{}

// RecordNotification does nothing.
func (NoopMetrics) RecordNotification(_ context.Context, _ string, _ event.Kind) {}

// ObserveSize does nothing.
func (NoopMetrics) ObserveSize(_ string, _ func() int) (func() error, error) {
	return func() error { return nil }, nil
}

// NoopSpanManager is a SpanManager that does nothing.
type NoopSpanManager struct{}

// Compile-time interface check.
var _ SpanManager = NoopSpanManager{}

var noopSpan = noop.Span{}

// StartNotificationSpan returns the context unchanged and a no-op span.
func (NoopSpanManager) StartNotificationSpan(ctx context.Context, _ string, _ event.Kind, _ string) (context.Context, trace.Span) {
	return ctx, noopSpan
}

// EndSpanWithError does nothing.
func (NoopSpanManager) EndSpanWithError(_ trace.Span, _ error) {}
