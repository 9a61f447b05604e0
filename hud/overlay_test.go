package hud

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverlay_Clamps(t *testing.T) {
	o := New()
	o.SetHealthPercent(1.5)
	o.SetStaminaPercent(-0.2)
	o.SetGold(12)
	o.SetSouls(3)

	assert.Equal(t, 1.0, o.HealthPercent)
	assert.Equal(t, 0.0, o.StaminaPercent)
	assert.Equal(t, 12, o.Gold)
	assert.Equal(t, 3, o.Souls)
	assert.Equal(t, 4, o.Updates)
}
