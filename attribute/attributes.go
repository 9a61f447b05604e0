// Package attribute holds the numeric resources of a character: health,
// stamina and the currencies picked up in the world.
package attribute

// Attributes is a plain resource holder. Every value is kept non-negative and
// the current values never exceed their maximums.
type Attributes struct {
	Health     float64
	MaxHealth  float64
	Stamina    float64
	MaxStamina float64

	// StaminaRegenRate is stamina regained per second.
	StaminaRegenRate float64
	AttackCost       float64

	Gold  int
	Souls int
}

// New creates an Attributes store filled to its maximums.
func New(maxHealth, maxStamina, regenRate, attackCost float64) *Attributes {
	if maxHealth <= 0 {
		maxHealth = 1
	}
	if maxStamina < 0 {
		maxStamina = 0
	}
	return &Attributes{
		Health:           maxHealth,
		MaxHealth:        maxHealth,
		Stamina:          maxStamina,
		MaxStamina:       maxStamina,
		StaminaRegenRate: nonNegative(regenRate),
		AttackCost:       nonNegative(attackCost),
	}
}

// ReceiveDamage lowers health, stopping at zero.
func (a *Attributes) ReceiveDamage(amount float64) {
	if a == nil || amount <= 0 {
		return
	}
	a.Health = clamp(a.Health-amount, 0, a.MaxHealth)
}

// UseStamina spends stamina, stopping at zero.
func (a *Attributes) UseStamina(amount float64) {
	if a == nil || amount <= 0 {
		return
	}
	a.Stamina = clamp(a.Stamina-amount, 0, a.MaxStamina)
}

// RegenStamina adds StaminaRegenRate*dt stamina.
func (a *Attributes) RegenStamina(dt float64) {
	if a == nil || dt <= 0 {
		return
	}
	a.Stamina = clamp(a.Stamina+a.StaminaRegenRate*dt, 0, a.MaxStamina)
}

func (a *Attributes) HealthPercent() float64 {
	if a == nil {
		return 0
	}
	return percent(a.Health, a.MaxHealth)
}

func (a *Attributes) StaminaPercent() float64 {
	if a == nil {
		return 0
	}
	return percent(a.Stamina, a.MaxStamina)
}

// IsAlive reports whether any health remains.
func (a *Attributes) IsAlive() bool {
	return a != nil && a.Health > 0
}

func (a *Attributes) CurrentStamina() float64 {
	if a == nil {
		return 0
	}
	return a.Stamina
}

func (a *Attributes) StaminaCostOfAttack() float64 {
	if a == nil {
		return 0
	}
	return a.AttackCost
}

func (a *Attributes) AddGold(n int) {
	if a == nil || n <= 0 {
		return
	}
	a.Gold += n
}

func (a *Attributes) AddSouls(n int) {
	if a == nil || n <= 0 {
		return
	}
	a.Souls += n
}

func (a *Attributes) GoldCount() int {
	if a == nil {
		return 0
	}
	return a.Gold
}

func (a *Attributes) SoulCount() int {
	if a == nil {
		return 0
	}
	return a.Souls
}

// Tune replaces the maximums and rates, keeping current values in range.
// Used when prefab tuning is reloaded while the game runs.
func (a *Attributes) Tune(maxHealth, maxStamina, regenRate, attackCost float64) {
	if a == nil {
		return
	}
	if maxHealth > 0 {
		a.MaxHealth = maxHealth
	}
	a.MaxStamina = nonNegative(maxStamina)
	a.StaminaRegenRate = nonNegative(regenRate)
	a.AttackCost = nonNegative(attackCost)
	a.Health = clamp(a.Health, 0, a.MaxHealth)
	a.Stamina = clamp(a.Stamina, 0, a.MaxStamina)
}

func percent(cur, max float64) float64 {
	if max <= 0 {
		return 0
	}
	return clamp(cur/max, 0, 1)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func nonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
