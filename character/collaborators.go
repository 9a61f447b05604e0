package character

import "github.com/jakecoffman/cp"

// AttributeStore is the resource holder a character draws health and stamina
// from.
type AttributeStore interface {
	ReceiveDamage(amount float64)
	UseStamina(amount float64)
	RegenStamina(dt float64)
	HealthPercent() float64
	StaminaPercent() float64
	IsAlive() bool
	CurrentStamina() float64
	StaminaCostOfAttack() float64
	AddGold(n int)
	AddSouls(n int)
	GoldCount() int
	SoulCount() int
}

// HUD receives pushed updates after every state-relevant mutation.
type HUD interface {
	SetHealthPercent(p float64)
	SetStaminaPercent(p float64)
	SetGold(n int)
	SetSouls(n int)
}

// Animator plays montages. Montages that the state machine waits on carry a
// Token that must be handed back to Character.Complete when they finish.
type Animator interface {
	PlayAttack(tok Token)
	PlayHitReact(dir HitDirection, tok Token)
	PlayDeath()
	PlayEquip(section string, tok Token)
}

// Effects spawns the cosmetic feedback of a hit.
type Effects interface {
	PlayHitSound(at cp.Vector)
	SpawnHitParticles(at cp.Vector)
}

// Body is the character's presence in the world.
type Body interface {
	Location() cp.Vector
	Forward() cp.Vector
	DisableMeshCollision()
}

// Collaborators are injected at construction. Any of them may be nil; the
// operations that need a missing collaborator skip the dependent step.
type Collaborators struct {
	Attributes AttributeStore
	HUD        HUD
	Animator   Animator
	Effects    Effects
	Body       Body
}
