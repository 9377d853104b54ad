// Package observability provides observers that turn registry notifications
// into structured logs, metrics and trace spans.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// All features are opt-in and have no-op implementations when disabled.
package observability

import (
	"log/slog"

	"github.com/randalmurphal/entityregistry/pkg/entityregistry/event"
)

// EnrichLogger adds registry context to a logger.
//
// Example:
//
//	enriched := EnrichLogger(logger, "vehicles")
//	enriched.Info("loaded fleet") // includes registry=vehicles
func EnrichLogger(logger *slog.Logger, registry string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(slog.String("registry", registry))
}

// LogObserver returns an observer that logs every notification.
// Successful outcomes are logged at debug level, failures at warn.
// Returns nil if logger is nil.
func LogObserver[T any](logger *slog.Logger, registry string) event.Observer[T] {
	if logger == nil {
		return nil
	}
	logger = EnrichLogger(logger, registry)

	return event.ObserverFunc[T](func(n event.Notification[T]) {
		LogNotification(logger, n.Kind, n.Key, n.Err)
	})
}

// LogNotification logs a single outcome.
func LogNotification(logger *slog.Logger, kind event.Kind, key string, err error) {
	if logger == nil {
		return
	}

	attrs := []any{
		slog.String("event", kind.String()),
		slog.String("key", key),
	}

	if !kind.Failed() {
		logger.Debug("registry operation succeeded", attrs...)
		return
	}

	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	logger.Warn("registry operation failed", attrs...)
}
