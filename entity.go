package stockroom

import "iter"

// EntityID identifies a game object. IDs are assigned by the caller (or a
// Ledger); the manager never validates that an id is alive.
type EntityID uint32

// InvalidEntity is the sentinel returned when an id cannot be issued.
const InvalidEntity EntityID = 0xFFFFFFFF

// Ledger is an optional entity-lifetime tracker: a free-list allocator that
// issues ids, recycles destroyed ones, and answers liveness queries. Stores
// and managers work fine without it when the caller assigns ids some other
// way.
type Ledger struct {
	alive     []bool
	free      []EntityID
	count     int
	onDestroy DestroyCallback
}

func newLedger() *Ledger {
	return &Ledger{}
}

// SetDestroyCallback registers a callback invoked for every destroyed id,
// typically Manager.RemoveAll to detach the entity's components.
func (l *Ledger) SetDestroyCallback(cb DestroyCallback) {
	l.onDestroy = cb
}

// Create issues a fresh or recycled id. InvalidEntity is returned once the
// id space is exhausted.
func (l *Ledger) Create() EntityID {
	if n := len(l.free); n > 0 {
		id := l.free[n-1]
		l.free = l.free[:n-1]
		l.alive[id] = true
		l.count++
		return id
	}
	if uint64(len(l.alive)) >= uint64(InvalidEntity) {
		return InvalidEntity
	}
	id := EntityID(len(l.alive))
	l.alive = append(l.alive, true)
	l.count++
	return id
}

// Destroy retires id and queues it for reuse. Destroying a dead or unknown
// id is a no-op returning false.
func (l *Ledger) Destroy(id EntityID) bool {
	if !l.Alive(id) {
		return false
	}
	l.alive[id] = false
	l.free = append(l.free, id)
	l.count--
	if l.onDestroy != nil {
		l.onDestroy(id)
	}
	return true
}

// Alive reports whether id was issued by this ledger and not yet destroyed.
func (l *Ledger) Alive(id EntityID) bool {
	return int(id) < len(l.alive) && l.alive[id]
}

// Count returns the number of live ids.
func (l *Ledger) Count() int {
	return l.count
}

// All iterates over live ids in ascending order. Create and Destroy must not
// be called during iteration.
func (l *Ledger) All() iter.Seq[EntityID] {
	return func(yield func(EntityID) bool) {
		for i, ok := range l.alive {
			if !ok {
				continue
			}
			if !yield(EntityID(i)) {
				return
			}
		}
	}
}
