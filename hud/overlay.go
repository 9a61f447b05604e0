// Package hud holds the values shown on the player's overlay. It implements
// character.HUD; drawing is left to the renderer.
package hud

// Overlay is the last pushed value of every HUD element.
type Overlay struct {
	HealthPercent  float64
	StaminaPercent float64
	Gold           int
	Souls          int

	// Updates counts pushes, so a renderer can skip redrawing a static HUD.
	Updates int
}

func New() *Overlay {
	return &Overlay{HealthPercent: 1, StaminaPercent: 1}
}

func (o *Overlay) SetHealthPercent(p float64) {
	o.HealthPercent = clamp01(p)
	o.Updates++
}

func (o *Overlay) SetStaminaPercent(p float64) {
	o.StaminaPercent = clamp01(p)
	o.Updates++
}

func (o *Overlay) SetGold(n int) {
	o.Gold = n
	o.Updates++
}

func (o *Overlay) SetSouls(n int) {
	o.Souls = n
	o.Updates++
}

func clamp01(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
