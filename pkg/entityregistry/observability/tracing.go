package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/randalmurphal/entityregistry/pkg/entityregistry/event"
)

// SpanManager handles trace span lifecycle.
// Use NewSpanManager() for OTel tracing or NoopSpanManager{} when disabled.
type SpanManager interface {
	// StartNotificationSpan starts a span describing one registry outcome.
	StartNotificationSpan(ctx context.Context, registry string, kind event.Kind, key string) (context.Context, trace.Span)

	// EndSpanWithError completes a span, optionally recording an error.
	EndSpanWithError(span trace.Span, err error)
}

// otelSpanManager implements SpanManager using OpenTelemetry.
type otelSpanManager struct {
	tracer trace.Tracer
}

// NewSpanManager returns a SpanManager that uses the global OTel tracer
// provider. Configure the provider before recording:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetTracerProvider(yourProvider)
func NewSpanManager() SpanManager {
	return &otelSpanManager{tracer: otel.Tracer("entityregistry")}
}

// NewSpanManagerFromProvider returns a SpanManager bound to provider.
func NewSpanManagerFromProvider(provider trace.TracerProvider) SpanManager {
	return &otelSpanManager{tracer: provider.Tracer("entityregistry")}
}

// StartNotificationSpan starts an internal span named after the outcome.
func (m *otelSpanManager) StartNotificationSpan(ctx context.Context, registry string, kind event.Kind, key string) (context.Context, trace.Span) {
	return m.tracer.Start(ctx, "entityregistry."+kind.String(),
		trace.WithAttributes(
			attribute.String("registry.name", registry),
			attribute.String("entity.key", key),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// EndSpanWithError completes a span, optionally recording an error.
func (m *otelSpanManager) EndSpanWithError(span trace.Span, err error) {
	if span == nil {
		return
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

// SpanObserver returns an observer that records one span per notification.
// Returns nil if spans is nil.
func SpanObserver[T any](spans SpanManager, registry string) event.Observer[T] {
	if spans == nil {
		return nil
	}
	return event.ObserverFunc[T](func(n event.Notification[T]) {
		_, span := spans.StartNotificationSpan(context.Background(), registry, n.Kind, n.Key)
		spans.EndSpanWithError(span, n.Err)
	})
}
