package stockroom

// KindStore is the manager's type-erased view of a per-kind component store.
// Every Store[T] satisfies it; the manager uses it for registry bookkeeping
// and teardown while typed access goes through Handle[T].
type KindStore interface {
	AddDefault(EntityID) error
	Remove(EntityID) bool
	Has(EntityID) bool
	Len() int
	Clear()
}

// DestroyCallback runs when a ledger entity is destroyed, typically to detach
// its components from a manager.
type DestroyCallback func(EntityID)
