package spatial

// RigidBody carries the dynamic state a physics integrator reads and writes
// each step. Static bodies participate in collisions but never move.
type RigidBody struct {
	Velocity Vec3
	Mass     float32
	Static   bool
}

// NewRigidBody returns a dynamic body at rest with unit mass.
func NewRigidBody() RigidBody {
	return RigidBody{Mass: 1}
}

// InverseMass returns 1/Mass, or 0 for static and massless bodies. Integrators
// multiply by this instead of dividing so static bodies fall out naturally.
func (rb RigidBody) InverseMass() float32 {
	if rb.Static || rb.Mass == 0 {
		return 0
	}
	return 1 / rb.Mass
}
