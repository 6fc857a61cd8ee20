package store

import "weak"

// WeakHandle is a weak reference to an entity's slot in a Storage[T]: it
// holds a weak.Pointer to the Storage itself (so caching a handle never
// keeps an otherwise-unreachable Storage alive) and re-resolves through
// Get on every access, so it is also honest about the value moving or
// disappearing under Erase, Compact, or Sort — there is no raw *T to go
// stale.
type WeakHandle[T any] struct {
	storage weak.Pointer[Storage[T]]
	entity  Entity
}

// NewWeakHandle captures a handle to e in s. e need not be live yet;
// Resolve simply reports absence until it is.
func NewWeakHandle[T any](s *Storage[T], e Entity) WeakHandle[T] {
	return WeakHandle[T]{storage: weak.Make(s), entity: e}
}

// Resolve reports whether the backing Storage is still alive and e is
// still a live entry in it, returning a pointer to the current value.
func (h WeakHandle[T]) Resolve() (*T, bool) {
	s := h.storage.Value()
	if s == nil {
		return nil, false
	}
	return s.Get(h.entity)
}

// Entity returns the entity this handle was created for.
func (h WeakHandle[T]) Entity() Entity { return h.entity }
