package entityregistry

import (
	"sync"

	"github.com/randalmurphal/entityregistry/pkg/entityregistry/event"
)

// Slot holds zero or one entity under the same contract as Registry, without
// a key space. Notifications carry the occupant's Key() when there is one.
type Slot[T Entity[T]] struct {
	*notifications[T]

	mu   sync.RWMutex
	item T
	has  bool
}

// NewSlot creates an empty slot. WithCapacity is ignored.
func NewSlot[T Entity[T]](opts ...Option) *Slot[T] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	s := &Slot[T]{}
	s.notifications = newNotifications[T](o, s.size)
	return s
}

func (s *Slot[T]) size() int {
	if s.HasEntity() {
		return 1
	}
	return 0
}

// HasEntity returns true if the slot is occupied.
func (s *Slot[T]) HasEntity() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.has
}

// Set stores entity, replacing any occupant, and raises AddedSuccess.
func (s *Slot[T]) Set(entity T) {
	s.mu.Lock()
	s.item = entity
	s.has = true
	s.mu.Unlock()

	s.raise(event.AddedSuccess, "set", entity.Key(), entity, nil)
}

// Clear empties the slot and raises RemovedSuccess with the prior occupant,
// which is the zero value if the slot was already empty. Reports whether the
// slot held an entity.
func (s *Slot[T]) Clear() bool {
	var zero T

	s.mu.Lock()
	prior, had := s.item, s.has
	s.item = zero
	s.has = false
	s.mu.Unlock()

	key := ""
	if had {
		key = prior.Key()
	}
	s.raise(event.RemovedSuccess, "clear", key, prior, nil)
	return had
}

// Update merges entity into the occupant, keeping its identity.
// Returns false and raises UpdatedFailed if the slot is empty.
func (s *Slot[T]) Update(entity T) bool {
	s.mu.Lock()
	occupant, has := s.item, s.has
	if has {
		occupant.MergeFrom(entity)
	}
	s.mu.Unlock()

	if !has {
		s.raise(event.UpdatedFailed, "update", entity.Key(), entity, ErrEmptySlot)
		return false
	}
	s.raise(event.UpdatedSuccess, "update", occupant.Key(), occupant, nil)
	return true
}

// Get returns the occupant itself.
// On an empty slot it raises GetFailed and returns the zero value and false.
func (s *Slot[T]) Get() (T, bool) {
	s.mu.RLock()
	v, ok := s.item, s.has
	s.mu.RUnlock()

	if !ok {
		s.raise(event.GetFailed, "get", "", v, ErrEmptySlot)
	}
	return v, ok
}

// GetClone returns an independent copy of the occupant.
// On an empty slot it raises GetFailed and returns the zero value and false.
func (s *Slot[T]) GetClone() (T, bool) {
	s.mu.RLock()
	v, ok := s.item, s.has
	if ok {
		v = v.Clone()
	}
	s.mu.RUnlock()

	if !ok {
		s.raise(event.GetFailed, "get_clone", "", v, ErrEmptySlot)
	}
	return v, ok
}
