package system

import (
	"github.com/milk9111/openworld/ecs"
	"github.com/milk9111/openworld/ecs/component"
)

// StaminaSystem regenerates every living character's stamina once a frame.
type StaminaSystem struct {
	dt float64
}

func NewStaminaSystem() *StaminaSystem {
	return &StaminaSystem{dt: 1.0 / ticksPerSecond}
}

func (s *StaminaSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.ActorComponent.Kind(), func(e ecs.Entity, actor *component.Actor) {
		if actor.Character.IsAlive() {
			actor.Character.Tick(s.dt)
		}
	})
}
