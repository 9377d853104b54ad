package event

import (
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Subscription represents an active subscription.
type Subscription interface {
	// ID returns the unique subscription identifier.
	ID() string

	// Unsubscribe removes the subscription. Calling it more than once is safe.
	Unsubscribe()

	// Pause temporarily stops delivery.
	Pause()

	// Resume continues delivery after pause.
	Resume()

	// IsPaused returns true if the subscription is paused.
	IsPaused() bool
}

// routeTable holds the delivery list for each kind, in registration order.
type routeTable[T any] [numKinds][]*subscription[T]

// Notifier multicasts notifications to subscribed observers.
// It is safe for concurrent use.
type Notifier[T any] struct {
	mu   sync.Mutex
	subs []*subscription[T] // registration order

	// routes is rebuilt on every subscribe/unsubscribe so Notify reads it
	// without taking mu.
	routes atomic.Pointer[routeTable[T]]
	closed atomic.Bool
}

// NewNotifier creates a notifier with no observers.
func NewNotifier[T any]() *Notifier[T] {
	n := &Notifier[T]{}
	n.routes.Store(&routeTable[T]{})
	return n
}

// subscription is the internal Subscription implementation.
type subscription[T any] struct {
	id       string
	kinds    []Kind // empty = all kinds
	observer Observer[T]
	paused   atomic.Bool
	removed  atomic.Bool
	notifier *Notifier[T]
}

// Subscribe registers obs for the given kinds. With no kinds, obs receives
// every notification. Returns nil if obs is nil or the notifier is closed.
func (n *Notifier[T]) Subscribe(obs Observer[T], kinds ...Kind) Subscription {
	sub := n.subscribe(obs, kinds)
	if sub == nil {
		return nil // a nil *subscription would make a non-nil Subscription
	}
	return sub
}

// SubscribeAll registers obs for every kind.
func (n *Notifier[T]) SubscribeAll(obs Observer[T]) Subscription {
	return n.Subscribe(obs)
}

func (n *Notifier[T]) subscribe(obs Observer[T], kinds []Kind) *subscription[T] {
	if obs == nil || n.closed.Load() {
		return nil
	}

	filtered := make([]Kind, 0, len(kinds))
	for _, k := range kinds {
		if k.valid() && !slices.Contains(filtered, k) {
			filtered = append(filtered, k)
		}
	}
	if len(kinds) > 0 && len(filtered) == 0 {
		return nil
	}

	sub := &subscription[T]{
		id:       uuid.NewString(),
		kinds:    filtered,
		observer: obs,
		notifier: n,
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	if n.closed.Load() {
		return nil
	}
	n.subs = append(n.subs, sub)
	n.rebuildLocked()
	return sub
}

// rebuildLocked recomputes the per-kind delivery lists. Caller holds mu.
func (n *Notifier[T]) rebuildLocked() {
	var r routeTable[T]
	for _, sub := range n.subs {
		if len(sub.kinds) == 0 {
			for k := range r {
				r[k] = append(r[k], sub)
			}
			continue
		}
		for _, k := range sub.kinds {
			r[k] = append(r[k], sub)
		}
	}
	n.routes.Store(&r)
}

func (n *Notifier[T]) remove(sub *subscription[T]) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.subs = slices.DeleteFunc(n.subs, func(s *subscription[T]) bool {
		return s == sub
	})
	n.rebuildLocked()
}

// Notify delivers note to every observer subscribed to note.Kind, in
// registration order, before returning. A zero Time is set to now.
func (n *Notifier[T]) Notify(note Notification[T]) {
	if n.closed.Load() || !note.Kind.valid() {
		return
	}

	subs := n.routes.Load()[note.Kind]
	if len(subs) == 0 {
		return
	}

	if note.Time.IsZero() {
		note.Time = time.Now()
	}

	for _, sub := range subs {
		if sub.removed.Load() || sub.paused.Load() {
			continue
		}
		sub.observer.Observe(note)
	}
}

// HasObservers reports whether any observer is subscribed to kind.
func (n *Notifier[T]) HasObservers(kind Kind) bool {
	if !kind.valid() {
		return false
	}
	return len(n.routes.Load()[kind]) > 0
}

// Len returns the number of active subscriptions.
func (n *Notifier[T]) Len() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.subs)
}

// Close removes every subscription. Later Subscribe calls return nil and
// Notify becomes a no-op.
func (n *Notifier[T]) Close() error {
	if !n.closed.CompareAndSwap(false, true) {
		return nil // Already closed
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	for _, sub := range n.subs {
		sub.removed.Store(true)
	}
	n.subs = nil
	n.rebuildLocked()
	return nil
}

// ID returns the subscription identifier.
func (s *subscription[T]) ID() string {
	return s.id
}

// Unsubscribe removes the subscription.
func (s *subscription[T]) Unsubscribe() {
	if !s.removed.CompareAndSwap(false, true) {
		return
	}
	s.notifier.remove(s)
}

// Pause temporarily stops delivery.
func (s *subscription[T]) Pause() {
	s.paused.Store(true)
}

// Resume continues delivery after pause.
func (s *subscription[T]) Resume() {
	s.paused.Store(false)
}

// IsPaused returns true if the subscription is paused.
func (s *subscription[T]) IsPaused() bool {
	return s.paused.Load()
}
