package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/openworld/character"
	"github.com/milk9111/openworld/ecs"
	"github.com/milk9111/openworld/ecs/component"
	"github.com/milk9111/openworld/ecs/entity"
	"github.com/milk9111/openworld/prefabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type arena struct {
	w      *ecs.World
	sched  *ecs.Scheduler
	input  component.Input
	player ecs.Entity
	events []ecs.Event
}

func newArena(t *testing.T, playerHealth float64) *arena {
	t.Helper()

	spec, err := prefabs.LoadCharacterSpec("character.yaml")
	require.NoError(t, err)
	if playerHealth > 0 {
		spec.Health = playerHealth
	}

	a := &arena{w: ecs.NewWorld()}
	a.w.SetPhysicsWorld(ecs.NewPhysicsWorld(400, 300))
	a.player, err = entity.NewPlayer(a.w, spec, cp.Vector{X: 100, Y: 100}, nil)
	require.NoError(t, err)

	a.sched = ecs.NewScheduler(
		NewInputSystem(func() component.Input { return a.input }),
		NewPlayerControllerSystem(),
		NewMovementSystem(),
		NewPhysicsSystem(nil),
		NewWeaponSystem(),
		NewAnimationSystem(),
		NewCombatSystem(),
		NewHazardSystem(),
		NewStaminaSystem(),
		NewParticleSystem(),
		NewWhiteFlashSystem(),
		NewPickupHoverSystem(),
		NewTTLSystem(),
	)
	return a
}

// step runs n frames, clearing edge-triggered input after the first.
func (a *arena) step(n int) {
	for i := 0; i < n; i++ {
		a.sched.Update(a.w)
		a.events = append(a.events, a.w.Events().Drain()...)
		a.input.JumpPressed, a.input.AttackPressed, a.input.EquipPressed = false, false, false
	}
}

func (a *arena) character() *character.Character {
	actor, _ := ecs.Get(a.w, a.player, component.ActorComponent.Kind())
	return actor.Character
}

func (a *arena) count(kind ecs.EventKind) int {
	n := 0
	for _, e := range a.events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func countOf[T any](w *ecs.World, kind component.ComponentKind[T]) int {
	n := 0
	ecs.ForEach(w, kind, func(ecs.Entity, *T) { n++ })
	return n
}

func (a *arena) placeSword(t *testing.T, pos cp.Vector) *character.Weapon {
	t.Helper()
	weapons, err := prefabs.LoadWeaponsSpec()
	require.NoError(t, err)
	sword, err := weapons["Sword"].Build()
	require.NoError(t, err)
	_, err = entity.NewPickup(a.w, sword, pos, 12, nil)
	require.NoError(t, err)
	return sword
}

func TestArena_EquipAttackAndHitDummy(t *testing.T) {
	a := newArena(t, 0)
	sword := a.placeSword(t, cp.Vector{X: 100, Y: 100})

	dummySpec, err := prefabs.LoadCharacterSpec("dummy.yaml")
	require.NoError(t, err)
	dummy, err := entity.NewDummy(a.w, dummySpec, prefabs.DummySpec{Name: "Dummy", X: 100 + sword.Reach, Y: 100, Health: 60, Facing: 3.14159}, nil)
	require.NoError(t, err)

	a.step(1)
	c := a.character()
	require.Equal(t, character.Item(sword), c.OverlappingItem(), "sword sensor should register")

	a.input.EquipPressed = true
	a.step(1)
	assert.Equal(t, character.EquippedOneHanded, c.CharacterState())
	assert.Same(t, sword, c.EquippedWeapon())
	assert.Equal(t, 1, a.count(ecs.EventEquip))

	a.step(1)
	assert.Equal(t, 1, countOf(a.w, component.WieldedComponent.Kind()), "equipped sword follows its owner")
	assert.Zero(t, countOf(a.w, component.PickupComponent.Kind()))

	a.input.AttackPressed = true
	a.step(1)
	require.Equal(t, character.Attacking, c.ActionState())

	a.input.MoveForward = 1
	a.step(1)
	a.input.MoveForward = 0
	assert.Positive(t, a.count(ecs.EventSwallowed), "movement is swallowed while attacking")

	a.step(20)
	target, _ := ecs.Get(a.w, dummy, component.ActorComponent.Kind())
	assert.Equal(t, 1, a.count(ecs.EventHit), "one strike per swing")
	assert.InDelta(t, 40.0/60.0, target.Character.Attributes().HealthPercent(), 1e-9)

	a.step(40)
	assert.Equal(t, character.Unoccupied, c.ActionState())
	assert.False(t, sword.CollisionEnabled())
}

func TestArena_CollectSoul(t *testing.T) {
	a := newArena(t, 0)
	soul, err := entity.NewSoul(a.w, 5, cp.Vector{X: 100, Y: 100})
	require.NoError(t, err)

	a.step(1)
	assert.Equal(t, 5, a.character().Attributes().SoulCount())
	assert.False(t, ecs.IsAlive(a.w, soul))
	assert.Equal(t, 1, a.count(ecs.EventPickup))

	bar, ok := ecs.Get(a.w, a.player, component.PlayerHealthBarComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, 5, bar.Overlay.Souls)
}

func TestArena_HazardCooldown(t *testing.T) {
	a := newArena(t, 100)
	_, err := entity.NewSpike(a.w, prefabs.HazardSpec{X: 90, Y: 90, Width: 20, Height: 20, Damage: 10, CooldownFrames: 5})
	require.NoError(t, err)

	a.step(1)
	attrs := a.character().Attributes()
	assert.InDelta(t, 0.9, attrs.HealthPercent(), 1e-9, "bites on entry")
	assert.Equal(t, character.HitReaction, a.character().ActionState())

	a.step(5)
	assert.InDelta(t, 0.9, attrs.HealthPercent(), 1e-9, "waits out the cooldown")

	a.step(1)
	assert.InDelta(t, 0.8, attrs.HealthPercent(), 1e-9)
	assert.Equal(t, 2, a.count(ecs.EventHazard))
}

func TestArena_DeathDisablesCollision(t *testing.T) {
	a := newArena(t, 10)
	_, err := entity.NewSpike(a.w, prefabs.HazardSpec{X: 90, Y: 90, Width: 20, Height: 20, Damage: 10, CooldownFrames: 5})
	require.NoError(t, err)

	a.step(1)
	c := a.character()
	assert.Equal(t, character.Dead, c.ActionState())
	assert.False(t, c.MeshCollisionEnabled())
	assert.False(t, a.w.PhysicsWorld().CollisionEnabled(a.player))
	assert.Equal(t, 1, a.count(ecs.EventDeath))

	a.step(30)
	assert.Equal(t, 1, a.count(ecs.EventHazard), "the dead take no further hits")
}

func TestArena_MoveAndTurn(t *testing.T) {
	a := newArena(t, 0)

	a.input.MoveForward = 1
	a.step(10)
	tr, _ := ecs.Get(a.w, a.player, component.TransformComponent.Kind())
	assert.Greater(t, tr.X, 100.0, "moves along the control yaw")
	assert.InDelta(t, 100.0, tr.Y, 1e-6)
	assert.InDelta(t, 0.0, tr.Yaw, 1e-9)

	a.input = component.Input{Turn: 1}
	a.step(1)
	m, _ := ecs.Get(a.w, a.player, component.MotionComponent.Kind())
	assert.Greater(t, m.ControlYaw, 0.0)

	a.input = component.Input{MoveRight: 1}
	a.step(1)
	assert.Greater(t, tr.Yaw, 0.0, "orients toward movement")
}

func TestArena_Jump(t *testing.T) {
	a := newArena(t, 0)

	a.input.JumpPressed = true
	a.step(1)
	tr, _ := ecs.Get(a.w, a.player, component.TransformComponent.Kind())
	assert.Positive(t, tr.Z)

	a.step(60)
	assert.Zero(t, tr.Z, "lands again")
}

func TestTTLSystem(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, e, component.TTLComponent.Kind(), &component.TTL{Frames: 2}))

	s := NewTTLSystem()
	s.Update(w)
	assert.True(t, ecs.IsAlive(w, e))
	s.Update(w)
	assert.False(t, ecs.IsAlive(w, e))
}

type fakeChanges []prefabs.Change

func (f *fakeChanges) Drain(fn func(prefabs.Change)) int {
	n := len(*f)
	for _, c := range *f {
		fn(c)
	}
	*f = nil
	return n
}

func TestPrefabReloadSystem(t *testing.T) {
	a := newArena(t, 0)
	changes := &fakeChanges{
		{Name: "character.yaml", Kind: prefabs.SpecChanged},
		{Name: "attack_section.tengo", Kind: prefabs.ScriptChanged},
		{Name: "arena.yaml", Kind: prefabs.SpecChanged},
	}

	NewPrefabReloadSystem(changes, "character.yaml", nil).Update(a.w)
	assert.Equal(t, 2, a.w.Events().Len(), "the arena file is not hot-reloaded")
}
