package observability

import (
	"context"
	"log/slog"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/randalmurphal/entityregistry/pkg/entityregistry/event"
)

// MetricsRecorder records registry metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordNotification counts one raised notification.
	RecordNotification(ctx context.Context, registry string, kind event.Kind)

	// ObserveSize reports the registry's entry count on every collection.
	// The returned function stops the reporting.
	ObserveSize(registry string, size func() int) (func() error, error)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	meter         metric.Meter
	notifications metric.Int64Counter
	failures      metric.Int64Counter
	entries       metric.Int64ObservableGauge
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics returns the default OTel metrics instance.
// Lazily initializes the metrics on first call.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics(otel.Meter("entityregistry"))
	})
	return defaultMetrics, defaultMetricsErr
}

// newOtelMetrics creates the registry instruments on meter.
func newOtelMetrics(meter metric.Meter) (*otelMetrics, error) {
	notifications, err := meter.Int64Counter("entityregistry.notifications",
		metric.WithDescription("Number of registry notifications raised"),
	)
	if err != nil {
		return nil, err
	}

	failures, err := meter.Int64Counter("entityregistry.failures",
		metric.WithDescription("Number of failed registry operations"),
	)
	if err != nil {
		return nil, err
	}

	entries, err := meter.Int64ObservableGauge("entityregistry.entries",
		metric.WithDescription("Number of entities held by a registry"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		meter:         meter,
		notifications: notifications,
		failures:      failures,
		entries:       entries,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before recording:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// NewMetricsRecorderFromProvider returns a MetricsRecorder bound to provider
// instead of the global one.
func NewMetricsRecorderFromProvider(provider metric.MeterProvider) (MetricsRecorder, error) {
	m, err := newOtelMetrics(provider.Meter("entityregistry"))
	if err != nil {
		return nil, err
	}
	return m, nil
}

// RecordNotification counts a notification and, for failure kinds, a failure.
func (m *otelMetrics) RecordNotification(ctx context.Context, registry string, kind event.Kind) {
	attrs := metric.WithAttributes(
		attribute.String("registry", registry),
		attribute.String("event", kind.String()),
	)

	m.notifications.Add(ctx, 1, attrs)
	if kind.Failed() {
		m.failures.Add(ctx, 1, attrs)
	}
}

// ObserveSize registers a gauge callback reporting size().
func (m *otelMetrics) ObserveSize(registry string, size func() int) (func() error, error) {
	attrs := metric.WithAttributes(attribute.String("registry", registry))

	reg, err := m.meter.RegisterCallback(func(_ context.Context, o metric.Observer) error {
		o.ObserveInt64(m.entries, int64(size()), attrs)
		return nil
	}, m.entries)
	if err != nil {
		return nil, err
	}
	return reg.Unregister, nil
}

// MetricsObserver returns an observer that records every notification on rec.
// Returns nil if rec is nil.
func MetricsObserver[T any](rec MetricsRecorder, registry string) event.Observer[T] {
	if rec == nil {
		return nil
	}
	return event.ObserverFunc[T](func(n event.Notification[T]) {
		rec.RecordNotification(context.Background(), registry, n.Kind)
	})
}
