package stockroom

import "iter"

// Store is a sparse-set mapping from EntityID to component values of one
// kind: values live in a dense slice, a sparse index maps ids to slots.
// Removal swap-deletes, so no ordering is guaranteed.
type Store[T any] struct {
	ids      []EntityID
	dense    []T
	sparse   map[EntityID]int
	fresh    func() T
	capacity int
}

var _ KindStore = &Store[int]{}

// StoreOption configures a store at construction.
type StoreOption[T any] func(*Store[T])

// WithDefault sets the factory producing the value inserted by Add. Without
// it, Add inserts the zero value of T.
func WithDefault[T any](fresh func() T) StoreOption[T] {
	return func(s *Store[T]) {
		s.fresh = fresh
	}
}

// WithCapacity bounds the store at n entries; Add and Set past the bound
// fail with AllocationError. Zero or negative means unbounded.
func WithCapacity[T any](n int) StoreOption[T] {
	return func(s *Store[T]) {
		s.capacity = n
	}
}

func newStore[T any](opts ...StoreOption[T]) *Store[T] {
	s := &Store[T]{
		sparse: make(map[EntityID]int),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store[T]) defaultValue() T {
	if s.fresh != nil {
		return s.fresh()
	}
	var zero T
	return zero
}

// Add associates a fresh default value with id, overwriting any existing
// value. The returned pointer is valid until the next structural mutation.
func (s *Store[T]) Add(id EntityID) (*T, error) {
	if i, ok := s.sparse[id]; ok {
		s.dense[i] = s.defaultValue()
		return &s.dense[i], nil
	}
	if s.capacity > 0 && len(s.dense) >= s.capacity {
		return nil, AllocationError{Capacity: s.capacity}
	}
	s.sparse[id] = len(s.dense)
	s.ids = append(s.ids, id)
	s.dense = append(s.dense, s.defaultValue())
	return &s.dense[len(s.dense)-1], nil
}

// AddDefault is Add without the pointer, satisfying KindStore.
func (s *Store[T]) AddDefault(id EntityID) error {
	_, err := s.Add(id)
	return err
}

// Set associates value with id, inserting if absent.
func (s *Store[T]) Set(id EntityID, value T) error {
	if i, ok := s.sparse[id]; ok {
		s.dense[i] = value
		return nil
	}
	if s.capacity > 0 && len(s.dense) >= s.capacity {
		return AllocationError{Capacity: s.capacity}
	}
	s.sparse[id] = len(s.dense)
	s.ids = append(s.ids, id)
	s.dense = append(s.dense, value)
	return nil
}

// Get returns a mutable pointer to the value for id, or false when absent.
// The pointer is valid only until the next Add, Set of a new id, or Remove
// on this store; retaining it across frames is a caller error.
func (s *Store[T]) Get(id EntityID) (*T, bool) {
	i, ok := s.sparse[id]
	if !ok {
		return nil, false
	}
	return &s.dense[i], true
}

// Value returns an owned copy of the value for id.
func (s *Store[T]) Value(id EntityID) (T, bool) {
	i, ok := s.sparse[id]
	if !ok {
		var zero T
		return zero, false
	}
	return s.dense[i], true
}

// Has reports whether id has a value in this store.
func (s *Store[T]) Has(id EntityID) bool {
	_, ok := s.sparse[id]
	return ok
}

// Remove deletes the association for id by swapping the last entry into its
// slot. Removing an absent id is a no-op returning false.
func (s *Store[T]) Remove(id EntityID) bool {
	i, ok := s.sparse[id]
	if !ok {
		return false
	}
	last := len(s.dense) - 1
	if i != last {
		s.dense[i] = s.dense[last]
		s.ids[i] = s.ids[last]
		s.sparse[s.ids[i]] = i
	}
	var zero T
	s.dense[last] = zero
	s.dense = s.dense[:last]
	s.ids = s.ids[:last]
	delete(s.sparse, id)
	return true
}

// Len returns the number of stored values.
func (s *Store[T]) Len() int {
	return len(s.dense)
}

// Clear drops every association.
func (s *Store[T]) Clear() {
	s.ids = nil
	s.dense = nil
	s.sparse = make(map[EntityID]int)
}

// All iterates over every (id, value) pair in unspecified order. Removing
// the pair just yielded is safe; any other structural mutation during
// iteration must be deferred (see Manager's Enqueue variants).
func (s *Store[T]) All() iter.Seq2[EntityID, *T] {
	return func(yield func(EntityID, *T) bool) {
		for i := len(s.dense) - 1; i >= 0; i-- {
			if i >= len(s.dense) {
				// the yield shrunk the store past us; resume at the new tail
				i = len(s.dense) - 1
				if i < 0 {
					return
				}
			}
			if !yield(s.ids[i], &s.dense[i]) {
				return
			}
		}
	}
}
