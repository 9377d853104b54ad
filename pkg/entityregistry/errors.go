package entityregistry

import (
	"errors"
	"fmt"
)

// Sentinel errors carried by failure notifications.
var (
	// ErrDuplicateKey indicates an Add targeted a key that is already present.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrNotFound indicates a Remove, Update or Get targeted a missing key.
	ErrNotFound = errors.New("entity not found")

	// ErrEmptySlot indicates a single-slot operation found no occupant.
	ErrEmptySlot = errors.New("slot is empty")
)

// OpError wraps a sentinel with the operation and key that produced it.
type OpError struct {
	// Op is the operation that failed ("add", "update", "remove", "get", ...).
	Op string
	// Key is the key the operation targeted. Empty for single-slot registries.
	Key string
	// Err is the underlying sentinel error.
	Err error
}

// Error implements the error interface.
func (e *OpError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %q: %v", e.Op, e.Key, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *OpError) Unwrap() error {
	return e.Err
}
