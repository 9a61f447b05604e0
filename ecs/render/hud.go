package render

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/openworld/ecs"
	"github.com/milk9111/openworld/ecs/component"
	"golang.org/x/image/colornames"
)

const (
	healthBarPaddingX = 12.0
	healthBarPaddingY = 12.0
	healthBarWidth    = 160.0
	healthBarHeight   = 8.0
)

// BarSource supplies the eased bar fractions to draw.
type BarSource interface {
	Displayed() (health, stamina float64)
}

// DrawHUD draws the player's health and stamina bars and currency counts in
// screen space.
func DrawHUD(w *ecs.World, screen *ebiten.Image, bars BarSource) {
	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok || bars == nil {
		return
	}
	hb, ok := ecs.Get(w, player, component.PlayerHealthBarComponent.Kind())
	if !ok || hb.Overlay == nil {
		return
	}

	health, stamina := bars.Displayed()
	bar(screen, healthBarPaddingX, healthBarPaddingY, healthBarWidth, healthBarHeight, health, colornames.Crimson)
	bar(screen, healthBarPaddingX, healthBarPaddingY+healthBarHeight+4, healthBarWidth, healthBarHeight, stamina, colornames.Limegreen)

	counts := fmt.Sprintf("Gold %d  Souls %d", hb.Overlay.Gold, hb.Overlay.Souls)
	ebitenutil.DebugPrintAt(screen, counts, int(healthBarPaddingX), int(healthBarPaddingY+2*healthBarHeight+10))
}
