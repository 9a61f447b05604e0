package system

import (
	"github.com/milk9111/openworld/ecs"
	"github.com/milk9111/openworld/ecs/component"
)

const particleDrag = 0.88

// ParticleSystem drifts hit sparks outward and slows them down.
type ParticleSystem struct{}

func NewParticleSystem() *ParticleSystem {
	return &ParticleSystem{}
}

func (s *ParticleSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.ParticleComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, p *component.Particle, t *component.Transform) {
		t.X += p.VX
		t.Y += p.VY
		p.VX *= particleDrag
		p.VY *= particleDrag
	})
}
