package stockroom

import (
	"iter"

	"github.com/TheBitDrifter/mask"
	iter_util "github.com/TheBitDrifter/util/iter"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"

	"github.com/duskhollow/stockroom/spatial"
)

// Manager is the central authority for component association: it owns one
// store per registered kind and the per-entity masks recording which kinds
// an entity currently carries. Transform and RigidBody stores are registered
// at construction; further kinds are added with RegisterComponent.
//
// A manager is not safe for concurrent use. Callers serialize access, e.g.
// at a frame boundary.
type Manager struct {
	registry  *registry
	masks     map[EntityID]mask.Mask
	queue     opQueue
	log       zerolog.Logger
	lockDepth int
	flushErr  error
	closed    bool

	// construction-time settings
	maxKinds   int
	defaultCap int

	transforms  Handle[spatial.Transform]
	rigidBodies Handle[spatial.RigidBody]
}

func newManager(opts ...Option) *Manager {
	m := &Manager{
		masks: make(map[EntityID]mask.Mask),
		queue: newOpQueue(),
		log:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.maxKinds > 0 && m.maxKinds < 2 {
		m.maxKinds = 2 // room for the built-in kinds
	}
	m.registry = newRegistry(m.maxKinds)

	var err error
	m.transforms, err = RegisterComponent[spatial.Transform](
		m, TransformKindName, WithDefault(spatial.NewTransform))
	if err != nil {
		panic(err) // fresh registry, cannot fail
	}
	m.rigidBodies, err = RegisterComponent[spatial.RigidBody](
		m, RigidBodyKindName, WithDefault(spatial.NewRigidBody))
	if err != nil {
		panic(err)
	}
	return m
}

// Transforms returns the typed handle for the built-in Transform kind.
func (m *Manager) Transforms() Handle[spatial.Transform] {
	return m.transforms
}

// RigidBodies returns the typed handle for the built-in RigidBody kind.
func (m *Manager) RigidBodies() Handle[spatial.RigidBody] {
	return m.rigidBodies
}

// Kind looks up a registered kind by name.
func (m *Manager) Kind(name string) (Kind, bool) {
	return m.registry.lookup(name)
}

// Kinds returns every registered kind in registration order.
func (m *Manager) Kinds() []Kind {
	return iter_util.Collect(m.registry.all())
}

// KindsOf returns the kinds currently attached to id.
func (m *Manager) KindsOf(id EntityID) []Kind {
	em, ok := m.masks[id]
	if !ok {
		return nil
	}
	attached := iter.Seq[Kind](func(yield func(Kind) bool) {
		for k := range m.registry.all() {
			if !em.ContainsAll(bitFor(k)) {
				continue
			}
			if !yield(k) {
				return
			}
		}
	})
	return iter_util.Collect(attached)
}

// Add associates a fresh default value of kind k with id, overwriting any
// existing value for that (id, kind) pair. Absence of a prior value is not
// an error; the only failures are a locked or closed manager, an unknown
// kind, and store exhaustion (AllocationError).
func (m *Manager) Add(k Kind, id EntityID) error {
	if m.closed {
		return ClosedError{}
	}
	if m.Locked() {
		return LockedError{}
	}
	store, ok := m.registry.storeFor(k)
	if !ok {
		return UnknownKindError{Kind: k}
	}
	if err := store.AddDefault(id); err != nil {
		return eris.Wrapf(err, "add %q component for entity %d", k.Name(), id)
	}
	em := m.masks[id]
	em.Mark(k.id)
	m.masks[id] = em
	return nil
}

// Remove deletes the association of kind k with id. Removing an absent
// association is a no-op returning false.
func (m *Manager) Remove(k Kind, id EntityID) (bool, error) {
	if m.closed {
		return false, ClosedError{}
	}
	if m.Locked() {
		return false, LockedError{}
	}
	store, ok := m.registry.storeFor(k)
	if !ok {
		return false, UnknownKindError{Kind: k}
	}
	if !store.Remove(id) {
		return false, nil
	}
	em := m.masks[id]
	em.Unmark(k.id)
	if em == (mask.Mask{}) {
		delete(m.masks, id)
	} else {
		m.masks[id] = em
	}
	return true, nil
}

// RemoveAll detaches every component from id, returning how many were
// removed.
func (m *Manager) RemoveAll(id EntityID) (int, error) {
	if m.closed {
		return 0, ClosedError{}
	}
	if m.Locked() {
		return 0, LockedError{}
	}
	em, ok := m.masks[id]
	if !ok {
		return 0, nil
	}
	removed := 0
	for k := range m.registry.all() {
		if !em.ContainsAll(bitFor(k)) {
			continue
		}
		store, _ := m.registry.storeFor(k)
		if store.Remove(id) {
			removed++
		}
	}
	delete(m.masks, id)
	return removed, nil
}

// Has reports whether id has a component of kind k.
func (m *Manager) Has(k Kind, id EntityID) bool {
	if m.closed {
		return false
	}
	store, ok := m.registry.storeFor(k)
	if !ok {
		return false
	}
	return store.Has(id)
}

// Count returns the number of entities carrying kind k.
func (m *Manager) Count(k Kind) int {
	store, ok := m.registry.storeFor(k)
	if !ok {
		return 0
	}
	return store.Len()
}

// EachWith iterates over the entities carrying every given kind, in
// unspecified order. With no kinds it visits every entity that has at least
// one component. The manager is locked for the duration; structural changes
// requested inside the loop go through the Enqueue variants and apply when
// iteration ends. The iterator cannot return a flush failure itself: check
// FlushErr after the loop when deferred operations may fail.
func (m *Manager) EachWith(kinds ...Kind) iter.Seq[EntityID] {
	return func(yield func(EntityID) bool) {
		if m.closed {
			return
		}
		var want mask.Mask
		for _, k := range kinds {
			if _, ok := m.registry.storeFor(k); !ok {
				return
			}
			want.Mark(k.id)
		}
		m.Lock()
		defer m.Unlock()
		for id, em := range m.masks {
			if !em.ContainsAll(want) {
				continue
			}
			if !yield(id) {
				return
			}
		}
	}
}

// EnqueueAdd is Add that defers while the manager is locked.
func (m *Manager) EnqueueAdd(k Kind, id EntityID) error {
	if m.closed {
		return ClosedError{}
	}
	if !m.Locked() {
		return m.Add(k, id)
	}
	if _, ok := m.registry.storeFor(k); !ok {
		return UnknownKindError{Kind: k}
	}
	m.queue.enqueueKindOp(opAdd, k, id)
	return nil
}

// EnqueueRemove is Remove that defers while the manager is locked.
func (m *Manager) EnqueueRemove(k Kind, id EntityID) error {
	if m.closed {
		return ClosedError{}
	}
	if !m.Locked() {
		_, err := m.Remove(k, id)
		return err
	}
	if _, ok := m.registry.storeFor(k); !ok {
		return UnknownKindError{Kind: k}
	}
	m.queue.enqueueKindOp(opRemove, k, id)
	return nil
}

// EnqueueRemoveAll is RemoveAll that defers while the manager is locked.
// A deferred wipe cancels the entity's pending per-kind operations.
func (m *Manager) EnqueueRemoveAll(id EntityID) error {
	if m.closed {
		return ClosedError{}
	}
	if !m.Locked() {
		_, err := m.RemoveAll(id)
		return err
	}
	m.queue.enqueueWipe(id)
	return nil
}

// Locked reports whether the manager is currently mid-iteration.
func (m *Manager) Locked() bool {
	return m.lockDepth > 0
}

// Lock defers structural mutation until the matching Unlock. Locks nest.
func (m *Manager) Lock() {
	m.lockDepth++
}

// Unlock releases one lock level; releasing the last level applies the
// deferred operation queue. A flush failure drops the unapplied remainder of
// the queue and is also retrievable through FlushErr.
func (m *Manager) Unlock() error {
	if m.lockDepth == 0 {
		return nil
	}
	m.lockDepth--
	if m.lockDepth > 0 {
		return nil
	}
	m.flushErr = m.flushQueue()
	if m.flushErr != nil {
		m.log.Error().Err(m.flushErr).Msg("failed to apply deferred operations")
	}
	return m.flushErr
}

// FlushErr returns the error from the most recent queue flush, or nil if it
// applied cleanly. It is the way to observe a deferred-operation failure
// when the flush ran inside an iterator (see EachWith).
func (m *Manager) FlushErr() error {
	return m.flushErr
}

// Close releases every store. The manager is unusable afterwards: mutating
// operations return ClosedError, lookups report absent.
func (m *Manager) Close() {
	if m.closed {
		return
	}
	m.registry.clear()
	m.masks = nil
	m.queue = newOpQueue()
	m.lockDepth = 0
	m.flushErr = nil
	m.closed = true
	m.log.Debug().Int("kinds", len(m.registry.kinds)).Msg("component manager closed")
}

// Closed reports whether Close has been called.
func (m *Manager) Closed() bool {
	return m.closed
}

func bitFor(k Kind) mask.Mask {
	var b mask.Mask
	b.Mark(k.id)
	return b
}
