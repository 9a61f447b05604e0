package system

import (
	"math"

	"github.com/milk9111/openworld/ecs"
	"github.com/milk9111/openworld/ecs/component"
)

const (
	pickupBobAmplitude = 3.0
	pickupBobSpeed     = 0.08
)

// PickupHoverSystem bobs items lying in the world. The bob is drawn as
// height so the pickup sensor never moves.
type PickupHoverSystem struct{}

func NewPickupHoverSystem() *PickupHoverSystem { return &PickupHoverSystem{} }

func (s *PickupHoverSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.PickupComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, pickup *component.Pickup, t *component.Transform) {
		pickup.Phase += pickupBobSpeed
		t.Z = pickupBobAmplitude * (1 + math.Sin(pickup.Phase))
	})
}
