package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/openworld/character"
	"github.com/milk9111/openworld/ecs"
	"github.com/milk9111/openworld/ecs/component"
)

const (
	// jumpGravity pulls a jumping character back to the floor, per frame.
	jumpGravity = 0.3
	// ticksPerSecond converts per-frame speeds into physics velocities.
	ticksPerSecond = 60.0
)

// MovementSystem turns accumulated movement input into body velocity,
// orients characters toward where they move and integrates jumps.
type MovementSystem struct{}

func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

func (s *MovementSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	pw := w.PhysicsWorld()

	ecs.ForEach4(w, component.MotionComponent.Kind(), component.TransformComponent.Kind(), component.ControllerComponent.Kind(), component.ActorComponent.Kind(), func(e ecs.Entity, m *component.Motion, t *component.Transform, ctl *component.Controller, actor *component.Actor) {
		pending := m.Pending
		m.Pending = cp.Vector{}

		if actor.Character.ActionState() == character.Dead {
			m.VZ = 0
			t.Z = 0
			pw.SetVelocity(e, cp.Vector{})
			return
		}

		if pending.LengthSq() > 1 {
			pending = pending.Normalize()
		}
		if pending.LengthSq() > 0 {
			t.Yaw = math.Atan2(pending.Y, pending.X)
		}
		pw.SetVelocity(e, pending.Mult(ctl.MoveSpeed*ticksPerSecond))

		if t.Z > 0 || m.VZ > 0 {
			t.Z += m.VZ
			m.VZ -= jumpGravity
			if t.Z <= 0 {
				t.Z = 0
				m.VZ = 0
			}
		}
	})

	// Actors without a controller hold their ground when shoved.
	ecs.ForEach(w, component.DummyTagComponent.Kind(), func(e ecs.Entity, _ *component.DummyTag) {
		pw.SetVelocity(e, cp.Vector{})
	})
}
