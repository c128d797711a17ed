package stockroom

import "iter"

// Handle is a typed view of one component kind, bound to the manager that
// registered it. Handles are cheap values meant to be passed around wherever
// components of that kind are accessed; the zero Handle is invalid.
type Handle[T any] struct {
	m     *Manager
	kind  Kind
	store *Store[T]
}

// Kind returns the kind this handle accesses.
func (h Handle[T]) Kind() Kind {
	return h.kind
}

// Add attaches a fresh default value to id, overwriting any existing value,
// and returns a pointer for immediate initialization. The pointer is valid
// only until the next structural mutation on this kind's store.
func (h Handle[T]) Add(id EntityID) (*T, error) {
	if err := h.m.Add(h.kind, id); err != nil {
		return nil, err
	}
	ptr, _ := h.store.Get(id)
	return ptr, nil
}

// Get returns a mutable pointer to id's component, or false when absent.
// Read or modify it at the call site; never retain it across frames.
func (h Handle[T]) Get(id EntityID) (*T, bool) {
	if h.m.closed {
		return nil, false
	}
	return h.store.Get(id)
}

// Value returns an owned copy of id's component.
func (h Handle[T]) Value(id EntityID) (T, bool) {
	if h.m.closed {
		var zero T
		return zero, false
	}
	return h.store.Value(id)
}

// Set associates value with id, attaching the component first if absent.
// Overwriting an existing value is non-structural and allowed while the
// manager is locked.
func (h Handle[T]) Set(id EntityID, value T) error {
	if h.m.closed {
		return ClosedError{}
	}
	if h.store.Has(id) {
		return h.store.Set(id, value)
	}
	if err := h.m.Add(h.kind, id); err != nil {
		return err
	}
	return h.store.Set(id, value)
}

// Remove detaches id's component; absent is a no-op returning false.
func (h Handle[T]) Remove(id EntityID) (bool, error) {
	return h.m.Remove(h.kind, id)
}

// Has reports whether id carries this kind.
func (h Handle[T]) Has(id EntityID) bool {
	return h.m.Has(h.kind, id)
}

// Len returns the number of entities carrying this kind.
func (h Handle[T]) Len() int {
	return h.m.Count(h.kind)
}

// All iterates this kind's (id, value) pairs in unspecified order. The
// manager is locked for the duration: mutate values through the yielded
// pointer freely, but structural changes must go through the Enqueue
// variants, which apply when iteration ends (check FlushErr after the loop).
func (h Handle[T]) All() iter.Seq2[EntityID, *T] {
	return func(yield func(EntityID, *T) bool) {
		if h.m.closed {
			return
		}
		h.m.Lock()
		defer h.m.Unlock()
		for id, ptr := range h.store.All() {
			if !yield(id, ptr) {
				return
			}
		}
	}
}
