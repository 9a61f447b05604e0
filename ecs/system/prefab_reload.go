package system

import (
	"log/slog"
	"time"

	"github.com/milk9111/openworld/ecs"
	"github.com/milk9111/openworld/ecs/component"
	"github.com/milk9111/openworld/montage"
	"github.com/milk9111/openworld/prefabs"
)

// ChangeSource yields prefab edits. *prefabs.Watcher satisfies it.
type ChangeSource interface {
	Drain(fn func(prefabs.Change)) int
}

type tunable interface {
	Tune(maxHealth, maxStamina, regenRate, attackCost float64)
}

// PrefabReloadSystem applies edited character tuning and section scripts to
// the live player without restarting the arena.
type PrefabReloadSystem struct {
	source    ChangeSource
	character string
	logger    *slog.Logger
	// loaded is the modification time of the last applied character file.
	loaded time.Time
}

func NewPrefabReloadSystem(source ChangeSource, characterFile string, logger *slog.Logger) *PrefabReloadSystem {
	if logger == nil {
		logger = slog.Default()
	}
	return &PrefabReloadSystem{source: source, character: characterFile, logger: logger}
}

func (s *PrefabReloadSystem) Update(w *ecs.World) {
	if s == nil || s.source == nil || w == nil {
		return
	}
	s.source.Drain(func(c prefabs.Change) {
		switch c.Kind {
		case prefabs.SpecChanged:
			if c.Name != s.character {
				return
			}
			s.reloadCharacter(w)
		case prefabs.ScriptChanged:
			s.reloadScript(w, c.Name)
		}
	})
}

func (s *PrefabReloadSystem) reloadCharacter(w *ecs.World) {
	// Editors often write a file twice; skip edits already applied.
	if mod, ok := prefabs.ModTime(s.character); ok {
		if mod.Equal(s.loaded) {
			return
		}
		s.loaded = mod
	}
	spec, err := prefabs.LoadCharacterSpec(s.character)
	if err != nil {
		s.logger.Warn("character reload failed", "file", s.character, "err", err)
		return
	}
	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}

	if actor, ok := ecs.Get(w, player, component.ActorComponent.Kind()); ok {
		if attrs, ok := actor.Character.Attributes().(tunable); ok {
			attrs.Tune(spec.Health, spec.Stamina, spec.StaminaRegen, spec.AttackCost)
		}
		actor.Radius = spec.Radius
	}
	if anim, ok := ecs.Get(w, player, component.AnimationComponent.Kind()); ok && anim.Player != nil {
		anim.Player.SetClips(spec.Montages.Clips())
	}
	if ctl, ok := ecs.Get(w, player, component.ControllerComponent.Kind()); ok {
		ctl.MoveSpeed, ctl.TurnRate, ctl.JumpSpeed = spec.MoveSpeed, spec.TurnRate, spec.JumpSpeed
	}

	w.Events().Push(ecs.Event{Kind: ecs.EventReload, Target: player, Detail: s.character})
	s.logger.Info("character reloaded", "file", s.character)
}

func (s *PrefabReloadSystem) reloadScript(w *ecs.World, name string) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		s.logger.Warn("script reload failed", "file", name, "err", err)
		return
	}
	if _, err := montage.NewSectionPicker(src); err != nil {
		s.logger.Warn("script compile failed", "file", name, "err", err)
		return
	}
	// Each player remembers its own previous section, so each gets its own
	// compiled copy.
	ecs.ForEach(w, component.AnimationComponent.Kind(), func(e ecs.Entity, anim *component.Animation) {
		if anim.Player == nil {
			return
		}
		if picker, err := montage.NewSectionPicker(src); err == nil {
			anim.Player.SetPicker(picker)
		}
	})
	w.Events().Push(ecs.Event{Kind: ecs.EventReload, Detail: name})
	s.logger.Info("section script reloaded", "file", name)
}
