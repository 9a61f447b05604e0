package component

import (
	"image/color"

	"github.com/milk9111/openworld/character"
)

// Pickup is an item lying in the world inside a circular sensor. Equippable
// items wait for the equip input; collectables are taken on contact.
type Pickup struct {
	Item   character.Item
	Radius float64
	Color  color.Color
	// Phase drives the hover bob.
	Phase float64
}

var PickupComponent = NewComponent[Pickup]()

// Wielded marks a weapon entity that now follows its owner's socket.
type Wielded struct {
	Weapon *character.Weapon
	Color  color.Color
}

var WieldedComponent = NewComponent[Wielded]()
