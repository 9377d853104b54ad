package event

import "time"

// Kind identifies a notification channel.
type Kind int

const (
	// AddedSuccess fires after an entity is inserted under a new key.
	AddedSuccess Kind = iota

	// AddedFailed fires when an insert hits an existing key.
	AddedFailed

	// RemovedSuccess fires after an entity leaves the registry.
	RemovedSuccess

	// RemovedFailed fires when a remove finds nothing to remove.
	RemovedFailed

	// UpdatedSuccess fires after a merge or reference swap.
	UpdatedSuccess

	// UpdatedFailed fires when an update targets a missing entity.
	UpdatedFailed

	// GetFailed fires when a lookup misses.
	GetFailed

	numKinds
)

// Kinds lists every notification kind in declaration order.
var Kinds = []Kind{
	AddedSuccess,
	AddedFailed,
	RemovedSuccess,
	RemovedFailed,
	UpdatedSuccess,
	UpdatedFailed,
	GetFailed,
}

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case AddedSuccess:
		return "added_success"
	case AddedFailed:
		return "added_failed"
	case RemovedSuccess:
		return "removed_success"
	case RemovedFailed:
		return "removed_failed"
	case UpdatedSuccess:
		return "updated_success"
	case UpdatedFailed:
		return "updated_failed"
	case GetFailed:
		return "get_failed"
	default:
		return "unknown"
	}
}

// Failed reports whether the kind describes a failed operation.
func (k Kind) Failed() bool {
	switch k {
	case AddedFailed, RemovedFailed, UpdatedFailed, GetFailed:
		return true
	default:
		return false
	}
}

// valid reports whether k indexes a notification channel.
func (k Kind) valid() bool {
	return k >= 0 && k < numKinds
}

// Notification is the payload delivered to observers.
type Notification[T any] struct {
	// Kind is the channel the notification was raised on.
	Kind Kind

	// Key is the key the operation targeted. Empty for single-slot registries.
	Key string

	// Entity is the entity involved in the outcome. For RemovedFailed and
	// GetFailed it is the zero value of T.
	Entity T

	// Err describes the failure. Nil for success kinds.
	Err error

	// Time is when the notification was raised.
	Time time.Time
}

// Observer receives notifications.
type Observer[T any] interface {
	Observe(n Notification[T])
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc[T any] func(n Notification[T])

// Observe calls f(n).
func (f ObserverFunc[T]) Observe(n Notification[T]) {
	f(n)
}
