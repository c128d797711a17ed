package stockroom

import (
	"github.com/rotisserie/eris"
)

type operationType int

const (
	opAdd operationType = iota
	opRemove

	// opSkip marks a queued operation cancelled by a later wipe.
	opSkip operationType = -1
)

type operation struct {
	typ  operationType
	kind Kind
	id   EntityID
}

type opKey struct {
	kind uint32
	id   EntityID
}

// opQueue collects structural changes requested while the manager is locked.
// One pending operation per (kind, entity) pair: a later request replaces an
// earlier one, and a pending wipe swallows per-kind requests for that entity.
type opQueue struct {
	ops         []operation
	pendingOps  map[opKey]int
	wipes       []EntityID
	pendingWipe map[EntityID]struct{}
}

func newOpQueue() opQueue {
	return opQueue{
		pendingOps:  make(map[opKey]int),
		pendingWipe: make(map[EntityID]struct{}),
	}
}

func (q *opQueue) enqueueKindOp(typ operationType, kind Kind, id EntityID) {
	if _, wiped := q.pendingWipe[id]; wiped {
		return
	}
	key := opKey{kind: kind.id, id: id}
	if idx, exists := q.pendingOps[key]; exists {
		q.ops[idx].typ = typ
		return
	}
	q.pendingOps[key] = len(q.ops)
	q.ops = append(q.ops, operation{typ: typ, kind: kind, id: id})
}

func (q *opQueue) enqueueWipe(id EntityID) {
	if _, exists := q.pendingWipe[id]; exists {
		return
	}
	q.pendingWipe[id] = struct{}{}
	q.wipes = append(q.wipes, id)

	// Cancel the entity's pending per-kind operations
	for key, idx := range q.pendingOps {
		if key.id == id {
			q.ops[idx].typ = opSkip
			delete(q.pendingOps, key)
		}
	}
}

func (q *opQueue) empty() bool {
	return len(q.ops) == 0 && len(q.wipes) == 0
}

func (q *opQueue) reset() {
	q.ops = q.ops[:0]
	q.wipes = q.wipes[:0]
	clear(q.pendingOps)
	clear(q.pendingWipe)
}

// flushQueue applies deferred operations: per-kind ops in request order,
// wipes last. Runs only once the last lock level is released. The queue
// never survives a flush: applied operations must not replay on the next
// unlock, and a failing operation is dropped along with the remainder
// rather than re-failing on every later flush.
func (m *Manager) flushQueue() error {
	if m.queue.empty() {
		return nil
	}
	defer m.queue.reset()
	for _, op := range m.queue.ops {
		switch op.typ {
		case opAdd:
			if err := m.Add(op.kind, op.id); err != nil {
				return eris.Wrapf(err, "apply deferred add of %q for entity %d", op.kind.Name(), op.id)
			}
		case opRemove:
			if _, err := m.Remove(op.kind, op.id); err != nil {
				return eris.Wrapf(err, "apply deferred remove of %q for entity %d", op.kind.Name(), op.id)
			}
		}
	}
	for _, id := range m.queue.wipes {
		if _, err := m.RemoveAll(id); err != nil {
			return eris.Wrapf(err, "apply deferred wipe for entity %d", id)
		}
	}
	return nil
}
