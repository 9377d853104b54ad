package entityregistry

import (
	"iter"
	"slices"
	"sync"

	"github.com/randalmurphal/entityregistry/pkg/entityregistry/event"
)

// Registry is a thread-safe store of entities indexed by key.
// It uses sync.RWMutex for read-heavy workloads.
//
// Every mutating operation and every failed lookup raises a notification
// (see package event) after the map operation completes and the lock is
// released.
type Registry[T Entity[T]] struct {
	*notifications[T]

	mu      sync.RWMutex
	entries map[string]T
}

// New creates a new empty registry.
func New[T Entity[T]](opts ...Option) *Registry[T] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	r := &Registry[T]{
		entries: make(map[string]T, o.capacity),
	}
	r.notifications = newNotifications[T](o, r.Len)
	return r
}

// Add inserts entity under entity.Key().
// Returns false and raises AddedFailed if the key is already present;
// the stored entity is left untouched.
func (r *Registry[T]) Add(entity T) bool {
	return r.AddAs(entity.Key(), entity)
}

// AddAs inserts entity under an explicit key instead of entity.Key().
func (r *Registry[T]) AddAs(key string, entity T) bool {
	r.mu.Lock()
	_, exists := r.entries[key]
	if !exists {
		r.entries[key] = entity
	}
	r.mu.Unlock()

	if exists {
		r.raise(event.AddedFailed, "add", key, entity, ErrDuplicateKey)
		return false
	}
	r.raise(event.AddedSuccess, "add", key, entity, nil)
	return true
}

// AddOrUpdate inserts entity if its key is absent (raising AddedSuccess), or
// merges it into the stored instance (raising UpdatedSuccess with the stored
// instance). It always succeeds.
func (r *Registry[T]) AddOrUpdate(entity T) bool {
	key := entity.Key()

	r.mu.Lock()
	existing, exists := r.entries[key]
	if exists {
		existing.MergeFrom(entity)
	} else {
		r.entries[key] = entity
	}
	r.mu.Unlock()

	if exists {
		r.raise(event.UpdatedSuccess, "add_or_update", key, existing, nil)
	} else {
		r.raise(event.AddedSuccess, "add_or_update", key, entity, nil)
	}
	return true
}

// Update merges entity into the instance stored under entity.Key(). The
// stored instance keeps its identity, so references obtained earlier through
// Get observe the new state.
//
// Returns false and raises UpdatedFailed if the key is absent.
func (r *Registry[T]) Update(entity T) bool {
	key := entity.Key()

	r.mu.Lock()
	existing, exists := r.entries[key]
	if exists {
		existing.MergeFrom(entity)
	}
	r.mu.Unlock()

	if !exists {
		r.raise(event.UpdatedFailed, "update", key, entity, ErrNotFound)
		return false
	}
	r.raise(event.UpdatedSuccess, "update", key, existing, nil)
	return true
}

// Replace stores entity under entity.Key(), dropping any previous instance.
// Unlike Update, holders of the old reference no longer see registry state.
// It always succeeds and raises UpdatedSuccess.
func (r *Registry[T]) Replace(entity T) bool {
	key := entity.Key()

	r.mu.Lock()
	r.entries[key] = entity
	r.mu.Unlock()

	r.raise(event.UpdatedSuccess, "replace", key, entity, nil)
	return true
}

// Remove deletes the entity stored under key.
// Returns false and raises RemovedFailed if the key is absent.
func (r *Registry[T]) Remove(key string) bool {
	r.mu.Lock()
	removed, exists := r.entries[key]
	if exists {
		delete(r.entries, key)
	}
	r.mu.Unlock()

	if !exists {
		var zero T
		r.raise(event.RemovedFailed, "remove", key, zero, ErrNotFound)
		return false
	}
	r.raise(event.RemovedSuccess, "remove", key, removed, nil)
	return true
}

// Get returns the stored instance for key.
// On a miss it raises GetFailed and returns the zero value and false.
func (r *Registry[T]) Get(key string) (T, bool) {
	r.mu.RLock()
	v, ok := r.entries[key]
	r.mu.RUnlock()

	if !ok {
		r.raise(event.GetFailed, "get", key, v, ErrNotFound)
	}
	return v, ok
}

// GetClone returns an independent copy of the instance stored under key.
// On a miss it raises GetFailed and returns the zero value and false.
func (r *Registry[T]) GetClone(key string) (T, bool) {
	r.mu.RLock()
	v, ok := r.entries[key]
	if ok {
		v = v.Clone()
	}
	r.mu.RUnlock()

	if !ok {
		r.raise(event.GetFailed, "get_clone", key, v, ErrNotFound)
	}
	return v, ok
}

// Contains returns true if key is present.
func (r *Registry[T]) Contains(key string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.entries[key]
	return ok
}

// Len returns the number of stored entities.
func (r *Registry[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Keys returns all keys in lexicographic order.
func (r *Registry[T]) Keys() []string {
	r.mu.RLock()
	keys := make([]string, 0, len(r.entries))
	for k := range r.entries {
		keys = append(keys, k)
	}
	r.mu.RUnlock()

	slices.Sort(keys)
	return keys
}

// values copies the stored references under a read lock.
func (r *Registry[T]) values() []T {
	r.mu.RLock()
	defer r.mu.RUnlock()

	vals := make([]T, 0, len(r.entries))
	for _, v := range r.entries {
		vals = append(vals, v)
	}
	return vals
}

// GetAll returns the stored instances that satisfy every filter.
//
// The set of entities is captured when GetAll is called; filters run lazily
// during iteration, each under the registry's read lock, against the live
// instances. Filters must not call back into the registry. Order is
// unspecified.
func (r *Registry[T]) GetAll(filters ...func(T) bool) iter.Seq[T] {
	vals := r.values()
	return func(yield func(T) bool) {
		for _, v := range vals {
			if r.matchLocked(v, filters) && !yield(v) {
				return
			}
		}
	}
}

// matchLocked evaluates filters under the read lock so they never overlap a
// merge into v.
func (r *Registry[T]) matchLocked(v T, filters []func(T) bool) bool {
	if len(filters) == 0 {
		return true
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return matches(v, filters)
}

// GetAllClone is like GetAll but yields independent copies. Each entity is
// cloned under the registry's read lock and filters see the copy.
func (r *Registry[T]) GetAllClone(filters ...func(T) bool) iter.Seq[T] {
	vals := r.values()
	return func(yield func(T) bool) {
		for _, v := range vals {
			r.mu.RLock()
			c := v.Clone()
			r.mu.RUnlock()

			if matches(c, filters) && !yield(c) {
				return
			}
		}
	}
}

// Snapshot collects GetAll into a slice the caller owns.
func (r *Registry[T]) Snapshot(filters ...func(T) bool) []T {
	return slices.Collect(r.GetAll(filters...))
}

func matches[T any](v T, filters []func(T) bool) bool {
	for _, f := range filters {
		if f != nil && !f(v) {
			return false
		}
	}
	return true
}
