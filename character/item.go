package character

import "github.com/jakecoffman/cp"

// Item is anything that can sit in a character's pickup range.
type Item interface {
	ItemName() string
}

// Equipper accepts weapons.
type Equipper interface {
	EquipWeapon(w *Weapon, socket string) bool
}

// Equippable items can be attached to an Equipper.
type Equippable interface {
	Item
	Equip(to Equipper, socket string) bool
}

// Collector receives currency from pickups.
type Collector interface {
	AddSouls(n int)
	AddGold(n int)
}

// Collectible items are consumed the first time they are collected.
type Collectible interface {
	Item
	Collect(by Collector) bool
	Collected() bool
}

// Actor is anything with a world position.
type Actor interface {
	Location() cp.Vector
}

// Damageable is anything that can be struck by a weapon or hazard.
type Damageable interface {
	Actor
	ApplyDamage(amount float64)
	ReceiveHit(impact cp.Vector, instigator Actor)
	IsAlive() bool
}

// Soul is a pickup that grants souls.
type Soul struct {
	Amount    int
	collected bool
}

func (s *Soul) ItemName() string { return "soul" }

func (s *Soul) Collected() bool { return s != nil && s.collected }

// Collect hands the souls to by exactly once.
func (s *Soul) Collect(by Collector) bool {
	if s == nil || s.collected || by == nil {
		return false
	}
	s.collected = true
	by.AddSouls(s.Amount)
	return true
}

// Treasure is a pickup that grants gold.
type Treasure struct {
	Name      string
	Gold      int
	collected bool
}

func (t *Treasure) ItemName() string {
	if t == nil || t.Name == "" {
		return "treasure"
	}
	return t.Name
}

func (t *Treasure) Collected() bool { return t != nil && t.collected }

// Collect hands the gold to by exactly once.
func (t *Treasure) Collect(by Collector) bool {
	if t == nil || t.collected || by == nil {
		return false
	}
	t.collected = true
	by.AddGold(t.Gold)
	return true
}
