package component

import "github.com/milk9111/openworld/hud"

// PlayerHealthBar is the screen-space overlay the player's character pushes
// health, stamina and currency to.
type PlayerHealthBar struct {
	Overlay *hud.Overlay
}

var PlayerHealthBarComponent = NewComponent[PlayerHealthBar]()
