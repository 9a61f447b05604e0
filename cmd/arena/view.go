package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/milk9111/openworld/character"
	"github.com/milk9111/openworld/ecs"
	"github.com/milk9111/openworld/ecs/component"
)

const barWidth = 10

// View renders the arena as a character grid scaled to the terminal, with a
// status bar, the recent events and the key help underneath.
func (m Model) View() string {
	cols, rows := m.gridSize()
	grid := m.rasterize(cols, rows)

	lines := make([]string, len(grid))
	for i, row := range grid {
		lines[i] = string(row)
	}

	var b strings.Builder
	b.WriteString(styleArena.Render(strings.Join(lines, "\n")))
	b.WriteString("\n")
	b.WriteString(styleStatusBar.Width(m.width).Render(m.status()))
	b.WriteString("\n")
	for _, e := range m.events {
		b.WriteString(styleEvent.Render(e))
		b.WriteString("\n")
	}
	b.WriteString(styleHelp.Render(m.keys.help()))
	return b.String()
}

// gridSize leaves room for the border, the status bar, the event pane and
// the help line.
func (m Model) gridSize() (int, int) {
	cols := m.width - 2
	rows := m.height - 4 - maxEvents - 1
	return max(cols, 16), max(rows, 6)
}

func (m Model) rasterize(cols, rows int) [][]rune {
	grid := make([][]rune, rows)
	for y := range grid {
		grid[y] = []rune(strings.Repeat(" ", cols))
	}
	sx := float64(cols) / m.arena.Width
	sy := float64(rows) / m.arena.Height
	cell := func(x, y float64) (int, int, bool) {
		cx, cy := int(x*sx), int(y*sy)
		return cx, cy, cx >= 0 && cy >= 0 && cx < cols && cy < rows
	}
	put := func(x, y float64, r rune) {
		if cx, cy, ok := cell(x, y); ok {
			grid[cy][cx] = r
		}
	}

	ecs.ForEach2(m.world, component.HazardComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, h *component.Hazard, t *component.Transform) {
		x0, y0, _ := cell(t.X, t.Y)
		x1, y1, _ := cell(t.X+h.Width, t.Y+h.Height)
		for y := max(y0, 0); y <= min(y1, rows-1); y++ {
			for x := max(x0, 0); x <= min(x1, cols-1); x++ {
				grid[y][x] = '^'
			}
		}
	})

	ecs.ForEach2(m.world, component.PickupComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, p *component.Pickup, t *component.Transform) {
		switch p.Item.(type) {
		case *character.Weapon:
			put(t.X, t.Y, '/')
		case *character.Soul:
			put(t.X, t.Y, '*')
		case *character.Treasure:
			put(t.X, t.Y, '$')
		default:
			put(t.X, t.Y, '?')
		}
	})

	ecs.ForEach2(m.world, component.WieldedComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, wd *component.Wielded, t *component.Transform) {
		glyph := '|'
		if wd.Weapon.CollisionEnabled() {
			glyph = '#'
		}
		put(t.X, t.Y, glyph)
	})

	ecs.ForEach2(m.world, component.ActorComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, a *component.Actor, t *component.Transform) {
		glyph := 'D'
		if ecs.Has(m.world, e, component.PlayerTagComponent.Kind()) {
			glyph = '@'
		}
		if !a.Character.IsAlive() {
			glyph = 'x'
		}
		put(t.X, t.Y, glyph)
		if a.Character.IsAlive() {
			put(t.X+math.Cos(t.Yaw)*a.Radius, t.Y+math.Sin(t.Yaw)*a.Radius, facingGlyph(t.Yaw))
		}
	})
	return grid
}

// facingGlyph picks an arrow for the nearest of the four screen directions.
func facingGlyph(yaw float64) rune {
	quarter := int(math.Round(yaw/(math.Pi/2))) % 4
	if quarter < 0 {
		quarter += 4
	}
	return []rune{'>', 'v', '<', '^'}[quarter]
}

func (m Model) status() string {
	actor, ok := ecs.Get(m.world, m.player, component.ActorComponent.Kind())
	if !ok {
		return "no player"
	}
	c := actor.Character
	attrs := c.Attributes()

	weapon := "none"
	if w := c.EquippedWeapon(); w != nil {
		weapon = w.Name
	}
	status := fmt.Sprintf(" HP %s  ST %s  %s/%s  weapon %s  gold %d  souls %d  frame %d",
		styleHealth.Render(meter(attrs.HealthPercent())),
		styleStamina.Render(meter(attrs.StaminaPercent())),
		c.ActionState(), c.CharacterState(), weapon,
		attrs.GoldCount(), attrs.SoulCount(), m.frames)
	if m.paused {
		status += "  " + lipgloss.NewStyle().Bold(true).Render("PAUSED")
	}
	return status
}

func meter(p float64) string {
	filled := int(math.Round(p * barWidth))
	filled = min(max(filled, 0), barWidth)
	return strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
}
