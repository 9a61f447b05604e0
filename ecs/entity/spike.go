package entity

import (
	"fmt"

	"github.com/milk9111/openworld/ecs"
	"github.com/milk9111/openworld/ecs/component"
	"github.com/milk9111/openworld/prefabs"
)

const defaultSpikeCooldown = 30

// NewSpike places a damaging volume from the arena prefab.
func NewSpike(w *ecs.World, spec prefabs.HazardSpec) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("spike: world is nil")
	}
	if spec.Width <= 0 || spec.Height <= 0 {
		return 0, fmt.Errorf("spike: size must be positive, got %vx%v", spec.Width, spec.Height)
	}
	cooldown := spec.CooldownFrames
	if cooldown <= 0 {
		cooldown = defaultSpikeCooldown
	}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: spec.X, Y: spec.Y}); err != nil {
		return 0, fmt.Errorf("spike: add transform: %w", err)
	}
	hz := &component.Hazard{
		Width:          spec.Width,
		Height:         spec.Height,
		Damage:         spec.Damage,
		CooldownFrames: cooldown,
	}
	if err := ecs.Add(w, e, component.HazardComponent.Kind(), hz); err != nil {
		return 0, fmt.Errorf("spike: add hazard: %w", err)
	}
	if pw := w.PhysicsWorld(); pw != nil {
		pw.AddHazard(e, spec.X, spec.Y, spec.Width, spec.Height)
	}
	return e, nil
}
