// Package character implements the combat state machine of a playable
// character: attacking, reacting to hits, dying and wielding a weapon.
//
// A Character carries two orthogonal states. ActionState says what the
// character is busy with and CharacterState says what it is holding. Every
// guard that reads both lives in allows.
package character

import (
	"log/slog"

	"github.com/jakecoffman/cp"
)

type trigger int

const (
	triggerAttack trigger = iota
	triggerHitReact
	triggerEquip
	triggerDraw
	triggerFinish
	triggerDie
)

func (t trigger) String() string {
	switch t {
	case triggerAttack:
		return "attack"
	case triggerHitReact:
		return "hit_react"
	case triggerEquip:
		return "equip"
	case triggerDraw:
		return "draw"
	case triggerFinish:
		return "finish"
	case triggerDie:
		return "die"
	default:
		return "unknown"
	}
}

// Character is a playable or scripted fighter.
type Character struct {
	name   string
	action ActionState
	equip  CharacterState

	// overlapping is a lookup only; the world owns the item.
	overlapping Item
	weapon      *Weapon

	attrs AttributeStore
	hud   HUD
	anim  Animator
	fx    Effects
	body  Body

	meshCollision bool
	lastToken     Token
	waiting       pending

	log *slog.Logger
}

// New creates a character in the Unoccupied/Unequipped state and pushes the
// initial values to its HUD.
func New(name string, deps Collaborators, logger *slog.Logger) *Character {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Character{
		name:          name,
		action:        Unoccupied,
		equip:         Unequipped,
		attrs:         deps.Attributes,
		hud:           deps.HUD,
		anim:          deps.Animator,
		fx:            deps.Effects,
		body:          deps.Body,
		meshCollision: true,
		log:           logger.With("character", name),
	}
	c.initHUD()
	return c
}

func (c *Character) initHUD() {
	if c.hud == nil || c.attrs == nil {
		return
	}
	c.hud.SetHealthPercent(c.attrs.HealthPercent())
	c.hud.SetStaminaPercent(c.attrs.StaminaPercent())
	c.hud.SetGold(c.attrs.GoldCount())
	c.hud.SetSouls(c.attrs.SoulCount())
}

// SetHUD attaches a HUD after construction, for callers whose UI is built
// later than the character, and pushes the current values to it.
func (c *Character) SetHUD(h HUD) {
	c.hud = h
	c.initHUD()
}

// allows is the single place where transitions are validated.
func (c *Character) allows(t trigger) bool {
	if c.action == Dead {
		return false
	}
	switch t {
	case triggerAttack:
		return c.action == Unoccupied && c.equip != Unequipped && c.weapon != nil && c.HasEnoughStamina()
	case triggerDraw:
		return c.action == Unoccupied && c.weapon != nil
	case triggerEquip, triggerHitReact, triggerFinish, triggerDie:
		return true
	default:
		return false
	}
}

func (c *Character) Name() string { return c.name }

func (c *Character) ActionState() ActionState { return c.action }

func (c *Character) CharacterState() CharacterState { return c.equip }

func (c *Character) EquippedWeapon() *Weapon { return c.weapon }

func (c *Character) OverlappingItem() Item { return c.overlapping }

func (c *Character) Attributes() AttributeStore { return c.attrs }

// MeshCollisionEnabled is false once the character has died.
func (c *Character) MeshCollisionEnabled() bool { return c.meshCollision }

// IsAlive is false once Dead or when the attribute store reports no health.
// A character without an attribute store cannot be killed by damage.
func (c *Character) IsAlive() bool {
	if c.action == Dead {
		return false
	}
	return c.attrs == nil || c.attrs.IsAlive()
}

func (c *Character) IsOccupied() bool { return c.action != Unoccupied }

func (c *Character) CanAttack() bool {
	return c.action == Unoccupied && c.equip != Unequipped
}

func (c *Character) HasEnoughStamina() bool {
	return c.attrs != nil && c.attrs.CurrentStamina() >= c.attrs.StaminaCostOfAttack()
}

// Location implements Actor.
func (c *Character) Location() cp.Vector {
	if c.body == nil {
		return cp.Vector{}
	}
	return c.body.Location()
}

// RequestAttack starts an attack when the character is free, armed and has
// the stamina for it. A sheathed weapon is drawn into the right hand as part
// of the swing. A refused attack changes nothing.
func (c *Character) RequestAttack() bool {
	if !c.allows(triggerAttack) {
		return false
	}
	if !c.weapon.Drawn() {
		c.weapon.attachMeshToSocket(RightHandSocket)
	}
	c.attrs.UseStamina(c.attrs.StaminaCostOfAttack())
	c.pushStamina()

	c.action = Attacking
	tok := c.issue(Attacking)
	if c.anim != nil {
		c.anim.PlayAttack(tok)
	}
	c.log.Debug("attack started", "stamina", c.attrs.CurrentStamina())
	return true
}

// FinishAttack returns the character to Unoccupied.
func (c *Character) FinishAttack() { c.finish(Attacking) }

// FinishEquip returns the character to Unoccupied.
func (c *Character) FinishEquip() { c.finish(Unoccupied) }

// FinishHitReaction returns the character to Unoccupied.
func (c *Character) FinishHitReaction() { c.finish(HitReaction) }

func (c *Character) finish(from ActionState) {
	if !c.allows(triggerFinish) {
		return
	}
	if from == Attacking && c.weapon != nil {
		c.weapon.SetCollisionEnabled(false)
	}
	if c.waiting.state == from {
		c.waiting = pending{}
	}
	c.action = Unoccupied
}

// ApplyDamage forwards damage to the attribute store and refreshes the HUD.
func (c *Character) ApplyDamage(amount float64) {
	if c.attrs == nil {
		return
	}
	c.attrs.ReceiveDamage(amount)
	c.pushHealth()
}

// ReceiveHit reacts to a blow landing at impact. A living character plays a
// directional hit reaction and enters HitReaction while health remains; a
// character without health dies. A hit during an attack overrides it.
func (c *Character) ReceiveHit(impact cp.Vector, instigator Actor) {
	if !c.allows(triggerHitReact) {
		return
	}

	if c.IsAlive() {
		dir := FromBack
		if instigator != nil && c.body != nil {
			dir = ClassifyHit(c.body.Location(), c.body.Forward(), instigator.Location())
		}
		var tok Token
		if c.attrs != nil && c.attrs.HealthPercent() > 0 {
			if c.action == Attacking {
				c.log.Debug("attack interrupted by hit")
			}
			c.action = HitReaction
			tok = c.issue(HitReaction)
		}
		if c.anim != nil {
			c.anim.PlayHitReact(dir, tok)
		}
	} else {
		c.Die()
	}

	if c.fx != nil {
		c.fx.PlayHitSound(impact)
		c.fx.SpawnHitParticles(impact)
	}
	if c.weapon != nil {
		c.weapon.SetCollisionEnabled(false)
	}
}

// TakeHit applies damage and then the hit reaction, in that order.
func (c *Character) TakeHit(amount float64, impact cp.Vector, instigator Actor) {
	if c.action == Dead {
		return
	}
	c.ApplyDamage(amount)
	c.ReceiveHit(impact, instigator)
}

// Die moves the character to Dead and disables its collision for good.
// Calling it again has no effect.
func (c *Character) Die() {
	if !c.allows(triggerDie) {
		return
	}
	c.action = Dead
	c.waiting = pending{}
	c.meshCollision = false
	if c.body != nil {
		c.body.DisableMeshCollision()
	}
	if c.weapon != nil {
		c.weapon.SetCollisionEnabled(false)
	}
	if c.anim != nil {
		c.anim.PlayDeath()
	}
	c.log.Info("character died")
}

// Tick regenerates stamina for one frame.
func (c *Character) Tick(dt float64) {
	if c.attrs == nil {
		return
	}
	c.attrs.RegenStamina(dt)
	c.pushStamina()
}

// SetWeaponCollisionEnabled opens the weapon's damage window. It only opens
// while attacking.
func (c *Character) SetWeaponCollisionEnabled(enabled bool) {
	if c.weapon == nil {
		return
	}
	if enabled && c.action != Attacking {
		return
	}
	c.weapon.SetCollisionEnabled(enabled)
}

// AddSouls implements Collector.
func (c *Character) AddSouls(n int) {
	if c.attrs == nil {
		return
	}
	c.attrs.AddSouls(n)
	if c.hud != nil {
		c.hud.SetSouls(c.attrs.SoulCount())
	}
	c.log.Info("souls collected", "amount", n, "total", c.attrs.SoulCount())
}

// AddGold implements Collector.
func (c *Character) AddGold(n int) {
	if c.attrs == nil {
		return
	}
	c.attrs.AddGold(n)
	if c.hud != nil {
		c.hud.SetGold(c.attrs.GoldCount())
	}
	c.log.Info("gold collected", "amount", n, "total", c.attrs.GoldCount())
}

// SetOverlappingItem records the item in pickup range.
func (c *Character) SetOverlappingItem(item Item) {
	c.overlapping = item
}

// ClearOverlappingItem forgets item if it is still the one in range.
func (c *Character) ClearOverlappingItem(item Item) {
	if c.overlapping == item {
		c.overlapping = nil
	}
}

// EquipWeapon attaches w to socket and adopts its equip state in one step.
// The previous weapon, if any, is dropped.
func (c *Character) EquipWeapon(w *Weapon, socket string) bool {
	if w == nil || w.EquipState == Unequipped || !c.allows(triggerEquip) {
		return false
	}
	if w.owner != nil && w.owner != c {
		return false
	}
	if c.weapon != nil && c.weapon != w {
		c.weapon.drop()
	}

	w.owner = c
	w.attachMeshToSocket(socket)
	c.weapon = w
	c.equip = w.EquipState

	if c.overlapping == Item(w) {
		c.overlapping = nil
	}
	c.log.Info("weapon equipped", "weapon", w.Name, "socket", socket, "state", c.equip.String())
	return true
}

// Arm draws the equipped weapon into the right hand.
func (c *Character) Arm() bool {
	return c.attach(RightHandSocket, "Equip")
}

// Disarm sheathes the equipped weapon on the spine. The character still
// possesses it, so CharacterState does not change.
func (c *Character) Disarm() bool {
	return c.attach(SpineSocket, "Unequip")
}

// ToggleDraw sheathes a drawn weapon and draws a sheathed one.
func (c *Character) ToggleDraw() bool {
	if c.weapon.Drawn() {
		return c.Disarm()
	}
	return c.Arm()
}

func (c *Character) attach(socket, section string) bool {
	if !c.allows(triggerDraw) || c.weapon.Socket() == socket {
		return false
	}
	c.weapon.attachMeshToSocket(socket)
	tok := c.issue(Unoccupied)
	if c.anim != nil {
		c.anim.PlayEquip(section, tok)
	}
	return true
}

func (c *Character) pushStamina() {
	if c.hud != nil && c.attrs != nil {
		c.hud.SetStaminaPercent(c.attrs.StaminaPercent())
	}
}

func (c *Character) pushHealth() {
	if c.hud != nil && c.attrs != nil {
		c.hud.SetHealthPercent(c.attrs.HealthPercent())
	}
}
