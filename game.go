package main

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/openworld/config"
	"github.com/milk9111/openworld/ecs"
	"github.com/milk9111/openworld/ecs/entity"
	"github.com/milk9111/openworld/ecs/render"
	"github.com/milk9111/openworld/ecs/system"
	"github.com/milk9111/openworld/prefabs"
)

type Game struct {
	frames int
	paused bool
	quit   bool
	debug  bool

	width, height float64

	world     *ecs.World
	scheduler *ecs.Scheduler
	render    *render.RenderSystem
	healthBar *system.PlayerHealthBarSystem
	watcher   *prefabs.Watcher
	pauseUI   *ebitenui.UI
	logger    *slog.Logger
}

func NewGame(cfg config.Config, logger *slog.Logger) (*Game, error) {
	w := ecs.NewWorld()
	_, arena, err := entity.BuildArena(w, entity.Arena{Arena: cfg.Arena, Character: cfg.Character}, logger)
	if err != nil {
		return nil, err
	}

	g := &Game{
		debug:     cfg.Debug,
		width:     arena.Width,
		height:    arena.Height,
		world:     w,
		render:    render.NewRenderSystem(cfg.Debug),
		healthBar: system.NewPlayerHealthBarSystem(),
		logger:    logger,
	}

	g.scheduler = ecs.NewScheduler(
		system.NewInputSystem(readDevices),
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
		g.healthBar,
	)

	if cfg.HotReload {
		watcher, err := prefabs.NewWatcher(logger, cfg.PrefabDir, filepath.Join(cfg.PrefabDir, "scripts"))
		if err != nil {
			logger.Warn("prefab hot reload disabled", "err", err)
		} else {
			g.watcher = watcher
			g.scheduler.Add(system.NewPrefabReloadSystem(watcher, cfg.Character, logger))
		}
	}

	g.pauseUI = NewPauseUI(g)
	return g, nil
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.frames++
	g.scheduler.Update(g.world)
	for _, evt := range g.world.Events().Drain() {
		g.logEvent(evt)
	}
	return nil
}

func (g *Game) logEvent(evt ecs.Event) {
	switch evt.Kind {
	case ecs.EventSwallowed:
		g.logger.Debug("input swallowed", "detail", evt.Detail)
	case ecs.EventDeath, ecs.EventEquip, ecs.EventPickup, ecs.EventReload:
		g.logger.Info(string(evt.Kind), "source", evt.Source, "target", evt.Target, "detail", evt.Detail)
	default:
		g.logger.Debug(string(evt.Kind), "source", evt.Source, "target", evt.Target, "amount", evt.Amount)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.render.Draw(g.world, screen)
	render.DrawHUD(g.world, screen, g.healthBar)

	if g.debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Frames: %d    FPS: %.2f", g.frames, ebiten.ActualFPS()), 0, int(g.height)-16)
	}
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

// Close stops the prefab watcher.
func (g *Game) Close() {
	if err := g.watcher.Close(); err != nil {
		g.logger.Warn("closing prefab watcher", "err", err)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return g.width, g.height
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
