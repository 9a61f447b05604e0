package system

import (
	"log/slog"

	"github.com/milk9111/openworld/character"
	"github.com/milk9111/openworld/ecs"
	"github.com/milk9111/openworld/ecs/component"
)

// PhysicsSystem steps the space, copies body positions back to transforms
// and applies the sensor overlaps gathered during the step.
type PhysicsSystem struct {
	dt     float64
	logger *slog.Logger
}

func NewPhysicsSystem(logger *slog.Logger) *PhysicsSystem {
	if logger == nil {
		logger = slog.Default()
	}
	return &PhysicsSystem{dt: 1.0 / ticksPerSecond, logger: logger}
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	pw := w.PhysicsWorld()
	if pw == nil {
		return
	}
	pw.Step(ps.dt)

	ecs.ForEach2(w, component.ActorComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, _ *component.Actor, t *component.Transform) {
		if pos, ok := pw.Position(e); ok {
			t.X, t.Y = pos.X, pos.Y
		}
	})

	for _, o := range pw.DrainOverlaps() {
		actor, ok := ecs.Get(w, o.Character, component.ActorComponent.Kind())
		if !ok || actor.Character == nil {
			continue
		}
		switch o.Kind {
		case ecs.OverlapPickup:
			ps.pickupOverlap(w, o, actor.Character)
		case ecs.OverlapHazard:
			hazardOverlap(w, o)
		}
	}
}

func (ps *PhysicsSystem) pickupOverlap(w *ecs.World, o ecs.Overlap, c *character.Character) {
	pickup, ok := ecs.Get(w, o.Other, component.PickupComponent.Kind())
	if !ok || pickup.Item == nil {
		return
	}
	if !o.Began {
		c.ClearOverlappingItem(pickup.Item)
		return
	}
	if !c.IsAlive() {
		return
	}

	if collectible, ok := pickup.Item.(character.Collectible); ok {
		if collectible.Collect(c) {
			w.Events().Push(ecs.Event{Kind: ecs.EventPickup, Source: o.Character, Target: o.Other, Detail: pickup.Item.ItemName()})
			ecs.DestroyEntity(w, o.Other)
		}
		return
	}
	c.SetOverlappingItem(pickup.Item)
	ps.logger.Debug("item in range", "character", c.Name(), "item", pickup.Item.ItemName())
}

func hazardOverlap(w *ecs.World, o ecs.Overlap) {
	contact, ok := ecs.Get(w, o.Character, component.HazardContactComponent.Kind())
	if !ok {
		return
	}
	if contact.Frames == nil {
		contact.Frames = make(map[uint64]int)
	}
	if o.Began {
		contact.Frames[uint64(o.Other)] = 0
		return
	}
	delete(contact.Frames, uint64(o.Other))
}
