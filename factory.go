package stockroom

import (
	"github.com/rotisserie/eris"
)

type factory struct{}

// Factory constructs the package's owned types.
var Factory factory

func (f factory) NewManager(opts ...Option) *Manager {
	return newManager(opts...)
}

func (f factory) NewLedger() *Ledger {
	return newLedger()
}

// FactoryNewStore creates a standalone store, unattached to any manager.
// Manager-owned stores are created through RegisterComponent instead.
func FactoryNewStore[T any](opts ...StoreOption[T]) *Store[T] {
	return newStore(opts...)
}

// RegisterComponent registers a new component kind under name and returns
// its typed handle. Names are unique per manager; the kind count is bounded
// by the manager's registry.
func RegisterComponent[T any](m *Manager, name string, opts ...StoreOption[T]) (Handle[T], error) {
	if m.closed {
		return Handle[T]{}, ClosedError{}
	}
	store := newStore(opts...)
	if store.capacity <= 0 && m.defaultCap > 0 {
		store.capacity = m.defaultCap
	}
	kind, err := m.registry.register(name, store)
	if err != nil {
		return Handle[T]{}, eris.Wrapf(err, "register component kind %q", name)
	}
	m.log.Debug().
		Str("component_name", name).
		Uint32("component_id", kind.id).
		Msg("registered component kind")
	return Handle[T]{m: m, kind: kind, store: store}, nil
}
