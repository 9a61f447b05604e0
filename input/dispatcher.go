// Package input turns player actions into movement commands and combat
// triggers.
package input

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/openworld/character"
)

// Pawn receives pass-through movement and camera commands.
type Pawn interface {
	AddMovementInput(dir cp.Vector, scale float64)
	AddYawInput(delta float64)
	AddPitchInput(delta float64)
	ControlYaw() float64
	Jump()
}

// Fighter is the part of a character the dispatcher drives.
type Fighter interface {
	character.Equipper
	ActionState() character.ActionState
	OverlappingItem() character.Item
	RequestAttack() bool
	ToggleDraw() bool
}

// Dispatcher routes each input action to the pawn or the fighter.
type Dispatcher struct {
	pawn    Pawn
	fighter Fighter
}

func NewDispatcher(pawn Pawn, fighter Fighter) *Dispatcher {
	return &Dispatcher{pawn: pawn, fighter: fighter}
}

// Move applies a 2D axis relative to the control yaw: X moves forward, Y
// moves right. Movement is swallowed while the fighter is attacking.
func (d *Dispatcher) Move(axis cp.Vector) bool {
	if d == nil || d.pawn == nil {
		return false
	}
	if d.fighter != nil && d.fighter.ActionState() == character.Attacking {
		return false
	}
	forward := cp.ForAngle(d.pawn.ControlYaw())
	right := forward.Perp()
	d.pawn.AddMovementInput(forward, axis.X)
	d.pawn.AddMovementInput(right, axis.Y)
	return true
}

func (d *Dispatcher) Turn(delta float64) {
	if d == nil || d.pawn == nil {
		return
	}
	d.pawn.AddYawInput(delta)
}

func (d *Dispatcher) LookUp(delta float64) {
	if d == nil || d.pawn == nil {
		return
	}
	d.pawn.AddPitchInput(delta)
}

func (d *Dispatcher) Jump() {
	if d == nil || d.pawn == nil {
		return
	}
	d.pawn.Jump()
}

// Equip picks up an equippable item in range, or toggles the equipped
// weapon between hand and sheath when nothing is in range.
func (d *Dispatcher) Equip() bool {
	if d == nil || d.fighter == nil {
		return false
	}
	switch item := d.fighter.OverlappingItem().(type) {
	case character.Equippable:
		return item.Equip(d.fighter, character.RightHandSocket)
	default:
		return d.fighter.ToggleDraw()
	}
}

func (d *Dispatcher) Attack() bool {
	if d == nil || d.fighter == nil {
		return false
	}
	return d.fighter.RequestAttack()
}
