package main

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/milk9111/openworld/config"
	"github.com/milk9111/openworld/ecs"
	"github.com/milk9111/openworld/ecs/component"
	"github.com/milk9111/openworld/ecs/entity"
	"github.com/milk9111/openworld/ecs/system"
	"github.com/milk9111/openworld/prefabs"
)

const (
	tickInterval  = time.Second / 30
	framesPerTick = 2
	// Terminals report presses but not releases, so a held axis decays after
	// a few ticks unless key repeat refreshes it.
	holdTicks = 4
	maxEvents = 4
)

type tickMsg time.Time

// controls is shared between the model copies bubbletea passes around and
// the input system's device callback.
type controls struct {
	input component.Input
	hold  int
}

func (c *controls) read() component.Input {
	return c.input
}

// endFrame clears edge-triggered presses once a frame has consumed them.
func (c *controls) endFrame() {
	c.input.JumpPressed, c.input.AttackPressed, c.input.EquipPressed = false, false, false
}

func (c *controls) endTick() {
	if c.hold > 0 {
		c.hold--
		if c.hold == 0 {
			c.input.MoveForward, c.input.MoveRight, c.input.Turn = 0, 0, 0
		}
	}
}

// Model is the bubbletea model driving one arena session.
type Model struct {
	world     *ecs.World
	scheduler *ecs.Scheduler
	player    ecs.Entity
	arena     *prefabs.ArenaSpec
	watcher   *prefabs.Watcher
	controls  *controls
	keys      keyMap
	logger    *slog.Logger

	events []string
	frames int
	paused bool
	width  int
	height int
}

// New builds the arena named by cfg and the systems that run it.
func New(cfg config.Config, logger *slog.Logger) (Model, error) {
	if logger == nil {
		logger = slog.Default()
	}
	w := ecs.NewWorld()
	player, arena, err := entity.BuildArena(w, entity.Arena{Arena: cfg.Arena, Character: cfg.Character}, logger)
	if err != nil {
		return Model{}, err
	}

	ctl := &controls{}
	sched := ecs.NewScheduler(
		system.NewInputSystem(ctl.read),
		system.NewPlayerControllerSystem(),
		system.NewMovementSystem(),
		system.NewPhysicsSystem(logger),
		system.NewWeaponSystem(),
		system.NewAnimationSystem(),
		system.NewCombatSystem(),
		system.NewHazardSystem(),
		system.NewStaminaSystem(),
		system.NewParticleSystem(),
		system.NewWhiteFlashSystem(),
		system.NewPickupHoverSystem(),
		system.NewTTLSystem(),
	)

	m := Model{
		world:     w,
		scheduler: sched,
		player:    player,
		arena:     arena,
		controls:  ctl,
		keys:      defaultKeyMap(),
		logger:    logger,
		width:     80,
		height:    24,
	}

	if cfg.HotReload {
		watcher, err := prefabs.NewWatcher(logger, cfg.PrefabDir, filepath.Join(cfg.PrefabDir, "scripts"))
		if err != nil {
			logger.Warn("prefab hot reload disabled", "err", err)
		} else {
			m.watcher = watcher
			sched.Add(system.NewPrefabReloadSystem(watcher, cfg.Character, logger))
		}
	}
	return m, nil
}

// Close stops the prefab watcher.
func (m Model) Close() {
	if err := m.watcher.Close(); err != nil {
		m.logger.Warn("closing prefab watcher", "err", err)
	}
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tickMsg:
		if !m.paused {
			m = m.advance(framesPerTick)
		}
		return m, tick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	in := &m.controls.input
	hold := func() { m.controls.hold = holdTicks }

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused
	case key.Matches(msg, m.keys.Forward):
		in.MoveForward = 1
		hold()
	case key.Matches(msg, m.keys.Back):
		in.MoveForward = -1
		hold()
	case key.Matches(msg, m.keys.Left):
		in.MoveRight = -1
		hold()
	case key.Matches(msg, m.keys.Right):
		in.MoveRight = 1
		hold()
	case key.Matches(msg, m.keys.TurnLeft):
		in.Turn = -1
		hold()
	case key.Matches(msg, m.keys.TurnRight):
		in.Turn = 1
		hold()
	case key.Matches(msg, m.keys.Jump):
		in.JumpPressed = true
	case key.Matches(msg, m.keys.Attack):
		in.AttackPressed = true
	case key.Matches(msg, m.keys.Equip):
		in.EquipPressed = true
	}
	return m, nil
}

// advance runs n simulation frames and collects their events for the log
// pane.
func (m Model) advance(n int) Model {
	for i := 0; i < n; i++ {
		m.frames++
		m.scheduler.Update(m.world)
		m.controls.endFrame()
		for _, evt := range m.world.Events().Drain() {
			if evt.Kind == ecs.EventSwallowed {
				continue
			}
			m.events = append(m.events, m.describe(evt))
			m.logger.Debug(string(evt.Kind), "source", evt.Source, "target", evt.Target, "amount", evt.Amount, "detail", evt.Detail)
		}
	}
	m.controls.endTick()
	if len(m.events) > maxEvents {
		m.events = append([]string(nil), m.events[len(m.events)-maxEvents:]...)
	}
	return m
}

func (m Model) describe(evt ecs.Event) string {
	switch evt.Kind {
	case ecs.EventHit:
		return fmt.Sprintf("%s hit %s with %s for %.0f", m.name(evt.Source), m.name(evt.Target), evt.Detail, evt.Amount)
	case ecs.EventHazard:
		return fmt.Sprintf("spikes hit %s for %.0f", m.name(evt.Target), evt.Amount)
	case ecs.EventDeath:
		return fmt.Sprintf("%s died", m.name(evt.Target))
	case ecs.EventEquip:
		return fmt.Sprintf("%s toggled equip", m.name(evt.Source))
	case ecs.EventPickup:
		return fmt.Sprintf("%s picked up %s", m.name(evt.Source), evt.Detail)
	case ecs.EventReload:
		return fmt.Sprintf("reloaded %s", evt.Detail)
	}
	return string(evt.Kind)
}

func (m Model) name(e ecs.Entity) string {
	if actor, ok := ecs.Get(m.world, e, component.ActorComponent.Kind()); ok {
		return actor.Character.Name()
	}
	return "?"
}
