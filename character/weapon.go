package character

import "github.com/jakecoffman/cp"

const (
	RightHandSocket = "RightHandSocket"
	SpineSocket     = "SpineSocket"
)

// Weapon is an equippable item. Once equipped it imposes EquipState on its
// owner and follows the socket it is attached to.
type Weapon struct {
	Name       string
	EquipState CharacterState
	Damage     float64
	Reach      float64

	owner            *Character
	socket           string
	collisionEnabled bool
	ignore           map[Damageable]struct{}
}

// NewWeapon creates an unowned weapon lying in the world.
func NewWeapon(name string, state CharacterState, damage, reach float64) *Weapon {
	return &Weapon{
		Name:       name,
		EquipState: state,
		Damage:     damage,
		Reach:      reach,
	}
}

func (w *Weapon) ItemName() string {
	if w == nil {
		return ""
	}
	return w.Name
}

// Equip hands the weapon to an Equipper at the given socket.
func (w *Weapon) Equip(to Equipper, socket string) bool {
	if w == nil || to == nil {
		return false
	}
	return to.EquipWeapon(w, socket)
}

// Owner returns the character holding the weapon, or nil.
func (w *Weapon) Owner() *Character {
	if w == nil {
		return nil
	}
	return w.owner
}

// Socket is the name of the socket the weapon is attached to, empty when it
// lies in the world.
func (w *Weapon) Socket() string {
	if w == nil {
		return ""
	}
	return w.socket
}

// Drawn reports whether the weapon is held ready in the right hand.
func (w *Weapon) Drawn() bool {
	return w != nil && w.socket == RightHandSocket
}

// attachMeshToSocket snaps the weapon onto socket.
func (w *Weapon) attachMeshToSocket(socket string) {
	w.socket = socket
}

func (w *Weapon) drop() {
	w.owner = nil
	w.socket = ""
	w.SetCollisionEnabled(false)
}

// SetCollisionEnabled opens or closes the damage window. Opening starts a
// new swing so every target can be struck once again.
func (w *Weapon) SetCollisionEnabled(enabled bool) {
	if w == nil {
		return
	}
	if enabled && !w.collisionEnabled {
		w.ignore = nil
	}
	w.collisionEnabled = enabled
}

func (w *Weapon) CollisionEnabled() bool {
	return w != nil && w.collisionEnabled
}

// TipLocation is the point the blade reaches given the owner's body.
func (w *Weapon) TipLocation() (cp.Vector, bool) {
	if w == nil || w.owner == nil || w.owner.body == nil {
		return cp.Vector{}, false
	}
	loc := w.owner.body.Location()
	fwd := w.owner.body.Forward()
	if fwd.LengthSq() == 0 {
		return loc, true
	}
	return loc.Add(fwd.Normalize().Mult(w.Reach)), true
}

// Strike damages target once per swing while the damage window is open. The
// owner is reported as instigator.
func (w *Weapon) Strike(target Damageable, impact cp.Vector) bool {
	if w == nil || target == nil || !w.collisionEnabled || w.owner == nil {
		return false
	}
	if target == Damageable(w.owner) || !target.IsAlive() {
		return false
	}
	if _, hit := w.ignore[target]; hit {
		return false
	}
	if w.ignore == nil {
		w.ignore = make(map[Damageable]struct{})
	}
	w.ignore[target] = struct{}{}

	target.ApplyDamage(w.Damage)
	target.ReceiveHit(impact, w.owner)
	return true
}
