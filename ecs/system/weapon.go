package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/openworld/character"
	"github.com/milk9111/openworld/ecs"
	"github.com/milk9111/openworld/ecs/component"
)

const (
	sheathOffset = 6.0
	dropOffset   = 18.0
)

// WeaponSystem keeps weapon entities in step with ownership: a weapon that
// was equipped leaves the ground and follows its owner's socket, a weapon
// that was dropped goes back on the ground next to its last owner.
type WeaponSystem struct {
	owners map[*character.Weapon]ecs.Entity
}

func NewWeaponSystem() *WeaponSystem {
	return &WeaponSystem{owners: make(map[*character.Weapon]ecs.Entity)}
}

func (s *WeaponSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.ActorComponent.Kind(), func(e ecs.Entity, actor *component.Actor) {
		if weapon := actor.Character.EquippedWeapon(); weapon != nil {
			s.owners[weapon] = e
		}
	})

	ecs.ForEach2(w, component.PickupComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, p *component.Pickup, _ *component.Transform) {
		weapon, ok := p.Item.(*character.Weapon)
		if !ok || weapon.Owner() == nil {
			return
		}
		if pw := w.PhysicsWorld(); pw != nil {
			pw.Forget(e)
		}
		_ = ecs.Add(w, e, component.WieldedComponent.Kind(), &component.Wielded{Weapon: weapon, Color: p.Color})
		_ = ecs.Remove(w, e, component.PickupComponent.Kind())
	})

	ecs.ForEach2(w, component.WieldedComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, wd *component.Wielded, t *component.Transform) {
		owner, ok := s.owners[wd.Weapon]
		ownerT, alive := ecs.Get(w, owner, component.TransformComponent.Kind())
		if wd.Weapon.Owner() == nil || !ok || !alive {
			s.drop(w, e, wd, t)
			return
		}
		place(t, ownerT, wd.Weapon)
	})
}

func place(t, owner *component.Transform, weapon *character.Weapon) {
	fwd := cp.ForAngle(owner.Yaw)
	pos := cp.Vector{X: owner.X, Y: owner.Y}
	if weapon.Drawn() {
		pos = pos.Add(fwd.Mult(weapon.Reach))
	} else {
		pos = pos.Sub(fwd.Mult(sheathOffset))
	}
	t.X, t.Y, t.Z, t.Yaw = pos.X, pos.Y, owner.Z, owner.Yaw
}

func (s *WeaponSystem) drop(w *ecs.World, e ecs.Entity, wd *component.Wielded, t *component.Transform) {
	delete(s.owners, wd.Weapon)
	pos := cp.Vector{X: t.X, Y: t.Y}.Add(cp.ForAngle(t.Yaw).Mult(dropOffset))
	t.X, t.Y, t.Z = pos.X, pos.Y, 0

	_ = ecs.Add(w, e, component.PickupComponent.Kind(), &component.Pickup{Item: wd.Weapon, Radius: defaultWeaponRadius, Color: wd.Color})
	_ = ecs.Remove(w, e, component.WieldedComponent.Kind())
	if pw := w.PhysicsWorld(); pw != nil {
		pw.AddPickup(e, pos, defaultWeaponRadius)
	}
}

const defaultWeaponRadius = 12.0
