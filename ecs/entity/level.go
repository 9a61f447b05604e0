package entity

import (
	"fmt"
	"log/slog"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/openworld/ecs"
	"github.com/milk9111/openworld/prefabs"
)

// Arena names the prefab files an arena is assembled from.
type Arena struct {
	Arena     string
	Character string
	Dummy     string
}

// BuildArena loads the arena prefab and populates w with its physics world,
// the player, dummies, weapons, collectables and hazards. It returns the
// player entity.
func BuildArena(w *ecs.World, files Arena, logger *slog.Logger) (ecs.Entity, *prefabs.ArenaSpec, error) {
	if w == nil {
		return 0, nil, fmt.Errorf("arena: world is nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	if files.Dummy == "" {
		files.Dummy = "dummy.yaml"
	}

	arena, err := prefabs.LoadArenaSpec(files.Arena)
	if err != nil {
		return 0, nil, err
	}
	playerSpec, err := prefabs.LoadCharacterSpec(files.Character)
	if err != nil {
		return 0, nil, err
	}
	weapons, err := prefabs.LoadWeaponsSpec()
	if err != nil {
		return 0, nil, err
	}

	w.SetPhysicsWorld(ecs.NewPhysicsWorld(arena.Width, arena.Height))

	player, err := NewPlayer(w, playerSpec, cp.Vector{X: arena.Spawn.X, Y: arena.Spawn.Y}, logger)
	if err != nil {
		return 0, nil, fmt.Errorf("arena %s: %w", arena.Name, err)
	}

	if len(arena.Dummies) > 0 {
		dummySpec, err := prefabs.LoadCharacterSpec(files.Dummy)
		if err != nil {
			return 0, nil, err
		}
		for _, d := range arena.Dummies {
			if _, err := NewDummy(w, dummySpec, d, logger); err != nil {
				return 0, nil, fmt.Errorf("arena %s: %w", arena.Name, err)
			}
		}
	}

	for _, placed := range arena.Weapons {
		ws, ok := weapons[placed.Weapon]
		if !ok {
			return 0, nil, fmt.Errorf("arena %s: unknown weapon %q", arena.Name, placed.Weapon)
		}
		weapon, err := ws.Build()
		if err != nil {
			return 0, nil, err
		}
		if _, err := NewPickup(w, weapon, cp.Vector{X: placed.X, Y: placed.Y}, placed.Radius, ws.Color.Or(nil)); err != nil {
			return 0, nil, fmt.Errorf("arena %s: %w", arena.Name, err)
		}
	}

	for _, s := range arena.Souls {
		if _, err := NewSoul(w, s.Amount, cp.Vector{X: s.X, Y: s.Y}); err != nil {
			return 0, nil, fmt.Errorf("arena %s: %w", arena.Name, err)
		}
	}
	for _, t := range arena.Treasures {
		if _, err := NewTreasure(w, t.Name, t.Gold, cp.Vector{X: t.X, Y: t.Y}); err != nil {
			return 0, nil, fmt.Errorf("arena %s: %w", arena.Name, err)
		}
	}
	for _, h := range arena.Hazards {
		if _, err := NewSpike(w, h); err != nil {
			return 0, nil, fmt.Errorf("arena %s: %w", arena.Name, err)
		}
	}

	logger.Info("arena built", "arena", arena.Name, "entities", len(ecs.Entities(w)))
	return player, arena, nil
}
