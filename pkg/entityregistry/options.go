package entityregistry

import (
	"log/slog"
	"os"

	"github.com/randalmurphal/entityregistry/pkg/entityregistry/config"
	"github.com/randalmurphal/entityregistry/pkg/entityregistry/observability"
)

// options holds construction settings shared by Registry and Slot.
type options struct {
	name     string
	capacity int
	logger   *slog.Logger
	metrics  observability.MetricsRecorder
	spans    observability.SpanManager
}

func defaultOptions() options {
	return options{
		name: config.Default().Name,
	}
}

// Option configures a Registry or Slot.
type Option func(*options)

// WithName sets the name reported in logs, metrics and spans.
// Default: "default"
func WithName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.name = name
		}
	}
}

// WithCapacity presizes the registry map. Ignored by Slot.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.capacity = n
		}
	}
}

// WithLogger logs every notification: successes at debug, failures at warn.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithMetrics records notification counters and an entry gauge on rec.
//
// Example:
//
//	r := entityregistry.New[*Vehicle](
//	    entityregistry.WithMetrics(observability.NewMetricsRecorder()),
//	)
func WithMetrics(rec observability.MetricsRecorder) Option {
	return func(o *options) {
		o.metrics = rec
	}
}

// WithTracing records one span per notification.
func WithTracing(spans observability.SpanManager) Option {
	return func(o *options) {
		o.spans = spans
	}
}

// WithSettings applies loaded settings. Logging writes text to stderr at the
// configured level; metrics and tracing use the global OTel providers.
// Options after WithSettings override it.
func WithSettings(s config.Settings) Option {
	return func(o *options) {
		WithName(s.Name)(o)
		WithCapacity(s.InitialCapacity)(o)

		if s.Logging.Enabled {
			o.logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: s.SlogLevel(),
			}))
		}
		if s.Metrics.Enabled {
			o.metrics = observability.NewMetricsRecorder()
		}
		if s.Tracing.Enabled {
			o.spans = observability.NewSpanManager()
		}
	}
}
