package stockroom

import "iter"

// Fits comfortably in the per-entity kind mask.
const defaultMaxKinds = 64

// registry maps kind names to type-erased stores. Kind ids are registry
// indices, assigned in registration order and never reused.
type registry struct {
	stores   []KindStore
	kinds    []Kind
	indices  map[string]uint32
	maxKinds int
}

func newRegistry(maxKinds int) *registry {
	if maxKinds <= 0 {
		maxKinds = defaultMaxKinds
	}
	return &registry{
		indices:  make(map[string]uint32),
		maxKinds: maxKinds,
	}
}

func (r *registry) register(name string, store KindStore) (Kind, error) {
	if _, exists := r.indices[name]; exists {
		return Kind{}, DuplicateKindError{Name: name}
	}
	if len(r.kinds) >= r.maxKinds {
		return Kind{}, RegistryFullError{Capacity: r.maxKinds}
	}
	kind := Kind{id: uint32(len(r.kinds)), name: name}
	r.indices[name] = kind.id
	r.kinds = append(r.kinds, kind)
	r.stores = append(r.stores, store)
	return kind, nil
}

func (r *registry) lookup(name string) (Kind, bool) {
	id, ok := r.indices[name]
	if !ok {
		return Kind{}, false
	}
	return r.kinds[id], true
}

// storeFor rejects kinds that were never issued by this registry, including
// the zero Kind and kinds from another manager.
func (r *registry) storeFor(k Kind) (KindStore, bool) {
	if !k.valid() || int(k.id) >= len(r.kinds) || r.kinds[k.id] != k {
		return nil, false
	}
	return r.stores[k.id], true
}

func (r *registry) all() iter.Seq[Kind] {
	return func(yield func(Kind) bool) {
		for _, k := range r.kinds {
			if !yield(k) {
				return
			}
		}
	}
}

func (r *registry) clear() {
	for _, store := range r.stores {
		store.Clear()
	}
}
