package entity

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/openworld/ecs"
	"github.com/milk9111/openworld/ecs/component"
)

// actorBody lets a character read its own placement from the world.
type actorBody struct {
	w *ecs.World
	e ecs.Entity
}

func (b actorBody) Location() cp.Vector {
	t, ok := ecs.Get(b.w, b.e, component.TransformComponent.Kind())
	if !ok {
		return cp.Vector{}
	}
	return cp.Vector{X: t.X, Y: t.Y}
}

func (b actorBody) Forward() cp.Vector {
	t, ok := ecs.Get(b.w, b.e, component.TransformComponent.Kind())
	if !ok {
		return cp.Vector{X: 1}
	}
	return cp.ForAngle(t.Yaw)
}

func (b actorBody) DisableMeshCollision() {
	b.w.PhysicsWorld().DisableCollision(b.e)
}
