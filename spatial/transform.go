package spatial

// Transform places an entity in world space: position, Euler-angle rotation
// (radians), and per-axis scale. Rendering and physics both assume the
// defaults from NewTransform for freshly attached components, so the zero
// scale of a bare struct literal is almost never what you want.
type Transform struct {
	Position Vec3
	Rotation Vec3
	Scale    Vec3
}

// NewTransform returns the identity transform: zero position and rotation,
// unit scale.
func NewTransform() Transform {
	return Transform{Scale: Vec3{X: 1, Y: 1, Z: 1}}
}

// Translated returns a copy of t displaced by delta.
func (t Transform) Translated(delta Vec3) Transform {
	t.Position = t.Position.Add(delta)
	return t
}

// Rotated returns a copy of t with delta added to its Euler angles.
func (t Transform) Rotated(delta Vec3) Transform {
	t.Rotation = t.Rotation.Add(delta)
	return t
}

// Scaled returns a copy of t with its scale multiplied uniformly by s.
func (t Transform) Scaled(s float32) Transform {
	t.Scale = t.Scale.Scale(s)
	return t
}
