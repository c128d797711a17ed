package stockroom

// Names of the component kinds every manager registers at construction.
const (
	TransformKindName = "transform"
	RigidBodyKindName = "rigidbody"
)

// Kind identifies a registered component kind within one manager. The id
// doubles as the kind's bit in per-entity masks. The zero Kind is invalid.
type Kind struct {
	id   uint32
	name string
}

// ID returns the kind's registry index.
func (k Kind) ID() uint32 {
	return k.id
}

// Name returns the name the kind was registered under.
func (k Kind) Name() string {
	return k.name
}

func (k Kind) valid() bool {
	return k.name != ""
}
