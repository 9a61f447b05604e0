package component

import "github.com/jakecoffman/cp"

// Motion accumulates movement requests for one frame and carries the
// vertical jump state between frames.
type Motion struct {
	Pending    cp.Vector
	ControlYaw float64
	Pitch      float64
	VZ         float64
}

// Grounded reports whether the entity is standing on the floor.
func (m *Motion) Grounded(t *Transform) bool {
	return t == nil || (t.Z <= 0 && m.VZ <= 0)
}

var MotionComponent = NewComponent[Motion]()
