package entity

import (
	"image/color"
	"log/slog"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/openworld/ecs"
	"github.com/milk9111/openworld/ecs/component"
	"golang.org/x/image/colornames"
)

const (
	hitParticleCount  = 8
	hitParticleFrames = 18
	hitParticleSpeed  = 2.2
)

// HitEffects spawns sparks as short-lived entities. There is no audio
// backend, so hit sounds are logged.
type HitEffects struct {
	w      *ecs.World
	color  color.Color
	logger *slog.Logger
}

func NewHitEffects(w *ecs.World, logger *slog.Logger) *HitEffects {
	if logger == nil {
		logger = slog.Default()
	}
	return &HitEffects{w: w, color: colornames.Orange, logger: logger}
}

func (h *HitEffects) PlayHitSound(at cp.Vector) {
	h.logger.Debug("hit sound", "x", at.X, "y", at.Y)
}

func (h *HitEffects) SpawnHitParticles(at cp.Vector) {
	if h == nil || h.w == nil {
		return
	}
	for i := 0; i < hitParticleCount; i++ {
		angle := 2 * math.Pi * float64(i) / hitParticleCount
		dir := cp.ForAngle(angle).Mult(hitParticleSpeed)

		e := ecs.CreateEntity(h.w)
		_ = ecs.Add(h.w, e, component.TransformComponent.Kind(), &component.Transform{X: at.X, Y: at.Y})
		_ = ecs.Add(h.w, e, component.ParticleComponent.Kind(), &component.Particle{VX: dir.X, VY: dir.Y, Size: 3, Color: h.color})
		_ = ecs.Add(h.w, e, component.TTLComponent.Kind(), &component.TTL{Frames: hitParticleFrames})
	}
}
