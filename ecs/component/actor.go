package component

import (
	"image/color"

	"github.com/milk9111/openworld/character"
)

// Actor links an entity to its combat state machine.
type Actor struct {
	Character *character.Character
	Radius    float64
	Color     color.Color
}

var ActorComponent = NewComponent[Actor]()
