package entityregistry

import (
	"log/slog"
	"sync"

	"github.com/randalmurphal/entityregistry/pkg/entityregistry/event"
	"github.com/randalmurphal/entityregistry/pkg/entityregistry/observability"
)

// notifications is the observer plumbing shared by Registry and Slot.
type notifications[T any] struct {
	name     string
	notifier *event.Notifier[T]

	closeOnce sync.Once
	stopSize  func() error
}

// newNotifications builds a notifier and subscribes the observers o asks for.
// size feeds the entry gauge when metrics are enabled.
func newNotifications[T any](o options, size func() int) *notifications[T] {
	n := &notifications[T]{
		name:     o.name,
		notifier: event.NewNotifier[T](),
	}

	observers := []event.Observer[T]{
		observability.LogObserver[T](o.logger, o.name),
		observability.MetricsObserver[T](o.metrics, o.name),
		observability.SpanObserver[T](o.spans, o.name),
	}
	for _, obs := range observers {
		if obs != nil {
			n.notifier.SubscribeAll(obs)
		}
	}

	if o.metrics != nil {
		stop, err := o.metrics.ObserveSize(o.name, size)
		if err != nil {
			if o.logger != nil {
				o.logger.Warn("entry gauge registration failed",
					slog.String("registry", o.name),
					slog.String("error", err.Error()))
			}
		} else {
			n.stopSize = stop
		}
	}

	return n
}

// Name returns the name given with WithName.
func (n *notifications[T]) Name() string {
	return n.name
}

// Subscribe registers obs for the given kinds, or for every kind when none
// are given. Observers run synchronously, in registration order, before the
// triggering operation returns.
func (n *notifications[T]) Subscribe(obs event.Observer[T], kinds ...event.Kind) event.Subscription {
	return n.notifier.Subscribe(obs, kinds...)
}

// SubscribeAll registers obs for every kind.
func (n *notifications[T]) SubscribeAll(obs event.Observer[T]) event.Subscription {
	return n.notifier.SubscribeAll(obs)
}

// Notifier returns the underlying notifier.
func (n *notifications[T]) Notifier() *event.Notifier[T] {
	return n.notifier
}

// Close drops every subscription and stops the entry gauge. Stored
// entities stay readable and writable; operations simply stop notifying.
func (n *notifications[T]) Close() error {
	var err error
	n.closeOnce.Do(func() {
		err = n.notifier.Close()
		if err == nil && n.stopSize != nil {
			err = n.stopSize()
		}
	})
	return err
}

// raise notifies observers of kind. For failure kinds, cause is wrapped in
// an OpError naming op and key.
func (n *notifications[T]) raise(kind event.Kind, op, key string, entity T, cause error) {
	if !n.notifier.HasObservers(kind) {
		return
	}

	var err error
	if cause != nil {
		err = &OpError{Op: op, Key: key, Err: cause}
	}

	n.notifier.Notify(event.Notification[T]{
		Kind:   kind,
		Key:    key,
		Entity: entity,
		Err:    err,
	})
}
