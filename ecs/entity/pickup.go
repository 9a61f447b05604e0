package entity

import (
	"fmt"
	"image/color"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/openworld/character"
	"github.com/milk9111/openworld/ecs"
	"github.com/milk9111/openworld/ecs/component"
	"golang.org/x/image/colornames"
)

const defaultPickupRadius = 10.0

// NewPickup lays item in the world inside a sensor of the given radius.
func NewPickup(w *ecs.World, item character.Item, pos cp.Vector, radius float64, clr color.Color) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("pickup: world is nil")
	}
	if item == nil {
		return 0, fmt.Errorf("pickup: item is nil")
	}
	if radius <= 0 {
		radius = defaultPickupRadius
	}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: pos.X, Y: pos.Y}); err != nil {
		return 0, fmt.Errorf("pickup %s: add transform: %w", item.ItemName(), err)
	}
	if err := ecs.Add(w, e, component.PickupComponent.Kind(), &component.Pickup{Item: item, Radius: radius, Color: clr}); err != nil {
		return 0, fmt.Errorf("pickup %s: add pickup: %w", item.ItemName(), err)
	}
	if pw := w.PhysicsWorld(); pw != nil {
		pw.AddPickup(e, pos, radius)
	}
	return e, nil
}

func NewSoul(w *ecs.World, amount int, pos cp.Vector) (ecs.Entity, error) {
	return NewPickup(w, &character.Soul{Amount: amount}, pos, 8, colornames.Mediumpurple)
}

func NewTreasure(w *ecs.World, name string, gold int, pos cp.Vector) (ecs.Entity, error) {
	return NewPickup(w, &character.Treasure{Name: name, Gold: gold}, pos, 12, colornames.Gold)
}
