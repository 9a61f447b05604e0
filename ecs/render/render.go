package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/openworld/character"
	"github.com/milk9111/openworld/ecs"
	"github.com/milk9111/openworld/ecs/component"
	"golang.org/x/image/colornames"
)

// RenderSystem draws the arena top-down with vector shapes. Debug adds the
// montage and state readout above each actor.
type RenderSystem struct {
	Debug bool
}

func NewRenderSystem(debug bool) *RenderSystem {
	return &RenderSystem{Debug: debug}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	ecs.ForEach2(w, component.HazardComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, h *component.Hazard, t *component.Transform) {
		vector.FillRect(screen, float32(t.X), float32(t.Y), float32(h.Width), float32(h.Height), color.RGBA{R: 255, A: 48}, false)
		vector.StrokeRect(screen, float32(t.X), float32(t.Y), float32(h.Width), float32(h.Height), 1.0, color.RGBA{R: 255, A: 200}, false)
	})

	ecs.ForEach2(w, component.PickupComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, p *component.Pickup, t *component.Transform) {
		clr := p.Color
		if clr == nil {
			clr = colornames.Silver
		}
		y := t.Y - t.Z
		if _, isWeapon := p.Item.(*character.Weapon); isWeapon {
			vector.StrokeCircle(screen, float32(t.X), float32(t.Y), float32(p.Radius), 1, clr, true)
			vector.StrokeLine(screen, float32(t.X-p.Radius*0.7), float32(y+p.Radius*0.7), float32(t.X+p.Radius*0.7), float32(y-p.Radius*0.7), 2, clr, true)
			return
		}
		vector.FillCircle(screen, float32(t.X), float32(y), float32(p.Radius*0.6), clr, true)
	})

	ecs.ForEach2(w, component.ActorComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, a *component.Actor, t *component.Transform) {
		flash, _ := ecs.Get(w, e, component.WhiteFlashComponent.Kind())
		r.drawActor(screen, a, t, flash)
	})

	ecs.ForEach2(w, component.WieldedComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, wd *component.Wielded, t *component.Transform) {
		owner := wd.Weapon.Owner()
		if owner == nil {
			return
		}
		clr := wd.Color
		if clr == nil {
			clr = colornames.Silver
		}
		if wd.Weapon.CollisionEnabled() {
			clr = colornames.White
		}
		from := owner.Location()
		vector.StrokeLine(screen, float32(from.X), float32(from.Y-t.Z), float32(t.X), float32(t.Y-t.Z), 3, clr, true)
	})

	ecs.ForEach2(w, component.ParticleComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, p *component.Particle, t *component.Transform) {
		vector.FillRect(screen, float32(t.X-p.Size/2), float32(t.Y-p.Size/2), float32(p.Size), float32(p.Size), p.Color, false)
	})
}

func (r *RenderSystem) drawActor(screen *ebiten.Image, a *component.Actor, t *component.Transform, flash *component.WhiteFlash) {
	c := a.Character
	clr := a.Color
	switch {
	case c.ActionState() == character.Dead:
		clr = colornames.Dimgray
	case flash != nil && flash.On:
		clr = colornames.White
	case c.ActionState() == character.HitReaction:
		clr = colornames.Crimson
	}

	// Shadow stays on the floor while the body rises with a jump.
	vector.FillCircle(screen, float32(t.X), float32(t.Y), float32(a.Radius), color.RGBA{A: 60}, true)
	y := t.Y - t.Z
	vector.FillCircle(screen, float32(t.X), float32(y), float32(a.Radius), clr, true)

	nose := cp.Vector{X: t.X, Y: y}.Add(cp.ForAngle(t.Yaw).Mult(a.Radius))
	vector.StrokeLine(screen, float32(t.X), float32(y), float32(nose.X), float32(nose.Y), 2, colornames.White, true)

	if !r.Debug {
		return
	}
	label := fmt.Sprintf("%s %s/%s", c.Name(), c.ActionState(), c.CharacterState())
	ebitenutil.DebugPrintAt(screen, label, int(t.X-a.Radius*2), int(y-a.Radius-28))
	if attrs := c.Attributes(); attrs != nil {
		bar(screen, t.X-a.Radius, y-a.Radius-10, a.Radius*2, 3, attrs.HealthPercent(), colornames.Crimson)
	}
}

func bar(screen *ebiten.Image, x, y, width, height, pct float64, clr color.Color) {
	vector.FillRect(screen, float32(x), float32(y), float32(width), float32(height), color.RGBA{A: 160}, false)
	vector.FillRect(screen, float32(x), float32(y), float32(width*pct), float32(height), clr, false)
}
