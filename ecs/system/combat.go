package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/openworld/ecs"
	"github.com/milk9111/openworld/ecs/component"
)

// bladeRadius is the reach tolerance around a weapon tip.
const bladeRadius = 6.0

// CombatSystem tests every open weapon window against the other actors and
// lands a strike when the tip is inside a target's body.
type CombatSystem struct{}

func NewCombatSystem() *CombatSystem { return &CombatSystem{} }

func (s *CombatSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.ActorComponent.Kind(), func(attacker ecs.Entity, a *component.Actor) {
		weapon := a.Character.EquippedWeapon()
		if !weapon.CollisionEnabled() {
			return
		}
		tip, ok := weapon.TipLocation()
		if !ok {
			return
		}

		ecs.ForEach2(w, component.ActorComponent.Kind(), component.TransformComponent.Kind(), func(target ecs.Entity, d *component.Actor, t *component.Transform) {
			if target == attacker {
				return
			}
			reach := d.Radius + bladeRadius
			if tip.DistanceSq(cp.Vector{X: t.X, Y: t.Y}) > reach*reach {
				return
			}
			if !weapon.Strike(d.Character, tip) {
				return
			}
			_ = ecs.Add(w, target, component.WhiteFlashComponent.Kind(), component.NewHitFlash())
			w.Events().Push(ecs.Event{Kind: ecs.EventHit, Source: attacker, Target: target, Amount: weapon.Damage, Detail: weapon.Name})
			if !d.Character.IsAlive() {
				w.Events().Push(ecs.Event{Kind: ecs.EventDeath, Source: attacker, Target: target})
			}
		})
	})
}
