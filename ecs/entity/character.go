package entity

import (
	"fmt"
	"image/color"
	"log/slog"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/openworld/attribute"
	"github.com/milk9111/openworld/character"
	"github.com/milk9111/openworld/ecs"
	"github.com/milk9111/openworld/ecs/component"
	"github.com/milk9111/openworld/montage"
	"github.com/milk9111/openworld/prefabs"
	"golang.org/x/image/colornames"
)

// CharacterOptions places a character prefab in the arena.
type CharacterOptions struct {
	Spec     *prefabs.CharacterSpec
	Name     string
	Position cp.Vector
	Facing   float64
	// Health overrides the prefab's health when positive.
	Health float64
	HUD    character.HUD
	Color  color.Color
	Logger *slog.Logger
}

// NewCharacter builds an entity carrying a character state machine, its
// montage player and a physics body.
func NewCharacter(w *ecs.World, opts CharacterOptions) (ecs.Entity, *character.Character, error) {
	if w == nil {
		return 0, nil, fmt.Errorf("character: world is nil")
	}
	if opts.Spec == nil {
		return 0, nil, fmt.Errorf("character: spec is nil")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	spec := opts.Spec
	name := opts.Name
	if name == "" {
		name = spec.Name
	}
	health := spec.Health
	if opts.Health > 0 {
		health = opts.Health
	}

	picker, err := LoadSectionPicker(spec.SectionScript)
	if err != nil {
		return 0, nil, fmt.Errorf("character %s: %w", name, err)
	}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: opts.Position.X, Y: opts.Position.Y, Yaw: opts.Facing}); err != nil {
		return 0, nil, fmt.Errorf("character %s: add transform: %w", name, err)
	}

	player := montage.NewPlayer(spec.Montages.Clips(), picker, logger.With("character", name))
	c := character.New(name, character.Collaborators{
		Attributes: attribute.New(health, spec.Stamina, spec.StaminaRegen, spec.AttackCost),
		HUD:        opts.HUD,
		Animator:   player,
		Effects:    NewHitEffects(w, logger),
		Body:       actorBody{w: w, e: e},
	}, logger)
	player.Bind(c)

	clr := opts.Color
	if clr == nil {
		clr = spec.Color.Or(colornames.Steelblue)
	}
	if err := ecs.Add(w, e, component.ActorComponent.Kind(), &component.Actor{Character: c, Radius: spec.Radius, Color: clr}); err != nil {
		return 0, nil, fmt.Errorf("character %s: add actor: %w", name, err)
	}
	if err := ecs.Add(w, e, component.AnimationComponent.Kind(), &component.Animation{Player: player}); err != nil {
		return 0, nil, fmt.Errorf("character %s: add animation: %w", name, err)
	}
	if err := ecs.Add(w, e, component.HazardContactComponent.Kind(), &component.HazardContact{Frames: map[uint64]int{}}); err != nil {
		return 0, nil, fmt.Errorf("character %s: add hazard contact: %w", name, err)
	}

	if pw := w.PhysicsWorld(); pw != nil {
		pw.AddCharacter(e, opts.Position, spec.Radius)
	}
	return e, c, nil
}

// NewDummy builds a training dummy from a placement in the arena prefab.
func NewDummy(w *ecs.World, spec *prefabs.CharacterSpec, placed prefabs.DummySpec, logger *slog.Logger) (ecs.Entity, error) {
	e, _, err := NewCharacter(w, CharacterOptions{
		Spec:     spec,
		Name:     placed.Name,
		Position: cp.Vector{X: placed.X, Y: placed.Y},
		Facing:   placed.Facing,
		Health:   placed.Health,
		Logger:   logger,
	})
	if err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.DummyTagComponent.Kind(), &component.DummyTag{}); err != nil {
		return 0, fmt.Errorf("dummy: add tag: %w", err)
	}
	return e, nil
}

// LoadSectionPicker compiles the named attack section script. An empty name
// yields a nil picker, which picks at random.
func LoadSectionPicker(name string) (*montage.SectionPicker, error) {
	if name == "" {
		return nil, nil
	}
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("load section script %s: %w", name, err)
	}
	return montage.NewSectionPicker(src)
}
