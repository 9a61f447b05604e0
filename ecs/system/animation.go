package system

import (
	"github.com/milk9111/openworld/ecs"
	"github.com/milk9111/openworld/ecs/component"
)

// AnimationSystem advances every montage by one frame. Completion edges and
// weapon windows are delivered to the characters from inside Update.
type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (s *AnimationSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.AnimationComponent.Kind(), func(e ecs.Entity, anim *component.Animation) {
		if anim.Player != nil {
			anim.Player.Update()
		}
	})
}
