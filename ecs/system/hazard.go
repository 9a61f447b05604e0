package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/openworld/ecs"
	"github.com/milk9111/openworld/ecs/component"
)

// hazardSource stands in as the instigator of a hazard hit so the hit
// direction is taken from the hazard's center.
type hazardSource cp.Vector

func (h hazardSource) Location() cp.Vector { return cp.Vector(h) }

// HazardSystem damages characters standing in hazard volumes, once on entry
// and then every CooldownFrames while they stay.
type HazardSystem struct{}

func NewHazardSystem() *HazardSystem {
	return &HazardSystem{}
}

func (s *HazardSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.ActorComponent.Kind(), component.HazardContactComponent.Kind(), func(e ecs.Entity, actor *component.Actor, contact *component.HazardContact) {
		for id, frames := range contact.Frames {
			if frames > 0 {
				contact.Frames[id] = frames - 1
				continue
			}

			hzEntity := ecs.Entity(id)
			hz, ok := ecs.Get(w, hzEntity, component.HazardComponent.Kind())
			t, tok := ecs.Get(w, hzEntity, component.TransformComponent.Kind())
			if !ok || !tok {
				delete(contact.Frames, id)
				continue
			}
			if !actor.Character.IsAlive() {
				continue
			}

			center := cp.Vector{X: t.X + hz.Width/2, Y: t.Y + hz.Height/2}
			actor.Character.TakeHit(hz.Damage, center, hazardSource(center))
			contact.Frames[id] = hz.CooldownFrames
			_ = ecs.Add(w, e, component.WhiteFlashComponent.Kind(), component.NewHitFlash())

			w.Events().Push(ecs.Event{Kind: ecs.EventHazard, Source: hzEntity, Target: e, Amount: hz.Damage})
			if !actor.Character.IsAlive() {
				w.Events().Push(ecs.Event{Kind: ecs.EventDeath, Source: hzEntity, Target: e})
			}
		}
	})
}
