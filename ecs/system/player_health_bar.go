package system

import (
	"github.com/milk9111/openworld/ecs"
	"github.com/milk9111/openworld/ecs/component"
)

// barEase is the fraction of the gap the drawn bars close each frame.
const barEase = 0.2

// PlayerHealthBarSystem eases the drawn bars toward the values the player's
// character last pushed to its overlay.
type PlayerHealthBarSystem struct {
	health  float64
	stamina float64
	primed  bool
}

func NewPlayerHealthBarSystem() *PlayerHealthBarSystem { return &PlayerHealthBarSystem{} }

func (s *PlayerHealthBarSystem) Update(w *ecs.World) {
	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	bar, ok := ecs.Get(w, player, component.PlayerHealthBarComponent.Kind())
	if !ok || bar.Overlay == nil {
		return
	}

	if !s.primed {
		s.health, s.stamina, s.primed = bar.Overlay.HealthPercent, bar.Overlay.StaminaPercent, true
		return
	}
	s.health += (bar.Overlay.HealthPercent - s.health) * barEase
	s.stamina += (bar.Overlay.StaminaPercent - s.stamina) * barEase
}

// Displayed returns the eased health and stamina fractions.
func (s *PlayerHealthBarSystem) Displayed() (health, stamina float64) {
	return s.health, s.stamina
}
