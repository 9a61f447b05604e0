package entity

import (
	"fmt"
	"log/slog"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/openworld/ecs"
	"github.com/milk9111/openworld/ecs/component"
	"github.com/milk9111/openworld/hud"
	"github.com/milk9111/openworld/prefabs"
)

// NewPlayer builds the controllable character along with its HUD overlay.
func NewPlayer(w *ecs.World, spec *prefabs.CharacterSpec, pos cp.Vector, logger *slog.Logger) (ecs.Entity, error) {
	overlay := hud.New()
	e, _, err := NewCharacter(w, CharacterOptions{
		Spec:     spec,
		Position: pos,
		HUD:      overlay,
		Logger:   logger,
	})
	if err != nil {
		return 0, err
	}

	if err := ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("player: add tag: %w", err)
	}
	if err := ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, fmt.Errorf("player: add input: %w", err)
	}
	if err := ecs.Add(w, e, component.MotionComponent.Kind(), &component.Motion{}); err != nil {
		return 0, fmt.Errorf("player: add motion: %w", err)
	}
	ctl := &component.Controller{
		MoveSpeed: spec.MoveSpeed,
		TurnRate:  spec.TurnRate,
		JumpSpeed: spec.JumpSpeed,
	}
	if err := ecs.Add(w, e, component.ControllerComponent.Kind(), ctl); err != nil {
		return 0, fmt.Errorf("player: add controller: %w", err)
	}
	if err := ecs.Add(w, e, component.PlayerHealthBarComponent.Kind(), &component.PlayerHealthBar{Overlay: overlay}); err != nil {
		return 0, fmt.Errorf("player: add health bar: %w", err)
	}
	return e, nil
}
