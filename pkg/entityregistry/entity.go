package entityregistry

// Entity is the capability contract every stored value satisfies.
// T is normally a pointer type, such as *Vehicle implementing Entity[*Vehicle].
type Entity[T any] interface {
	// Key returns the identifier the entity is stored under. Changing the
	// returned value after insertion does not re-key the entry.
	Key() string

	// Clone returns an independent deep copy. Mutating the copy must never
	// affect the original or the other way around.
	Clone() T

	// MergeFrom overwrites the receiver's mutable state with src's,
	// keeping the receiver's identity.
	MergeFrom(src T)
}
