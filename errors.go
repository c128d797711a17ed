package stockroom

import "fmt"

// AllocationError reports that a capacity-bounded store cannot take another
// entry. It is fatal to the failing call only; callers decide whether to
// re-add or abort.
type AllocationError struct {
	Capacity int
}

func (e AllocationError) Error() string {
	return fmt.Sprintf("component store is at capacity (%d)", e.Capacity)
}

// LockedError reports a structural mutation attempted while the manager is
// iterating. Use the Enqueue variants instead.
type LockedError struct{}

func (e LockedError) Error() string {
	return "manager is locked during iteration"
}

// ClosedError reports an operation on a manager after Close.
type ClosedError struct{}

func (e ClosedError) Error() string {
	return "manager is closed"
}

// UnknownKindError reports a kind that was never registered with this
// manager (or belongs to a different one).
type UnknownKindError struct {
	Kind Kind
}

func (e UnknownKindError) Error() string {
	return fmt.Sprintf("unknown component kind %q", e.Kind.Name())
}

// DuplicateKindError reports a second registration under an existing name.
type DuplicateKindError struct {
	Name string
}

func (e DuplicateKindError) Error() string {
	return fmt.Sprintf("component kind already registered: %q", e.Name)
}

// RegistryFullError reports that no more kinds fit in the kind mask.
type RegistryFullError struct {
	Capacity int
}

func (e RegistryFullError) Error() string {
	return fmt.Sprintf("kind registry at maximum capacity (%d)", e.Capacity)
}
