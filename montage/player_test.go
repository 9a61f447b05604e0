package montage

import (
	"testing"

	"github.com/milk9111/openworld/attribute"
	"github.com/milk9111/openworld/character"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testClips = Clips{
	Attack:   Clip{Frames: 6, Sections: []string{"Attack1", "Attack2"}, WindowStart: 2, WindowEnd: 4},
	HitReact: Clip{Frames: 4},
	Death:    Clip{Frames: 3},
	Equip:    Clip{Frames: 2},
}

func newBound(t *testing.T) (*Player, *character.Character, *character.Weapon) {
	t.Helper()
	p := NewPlayer(testClips, nil, nil)
	c := character.New("slash", character.Collaborators{
		Attributes: attribute.New(100, 10, 1, 3),
		Animator:   p,
	}, nil)
	p.Bind(c)
	w := character.NewWeapon("sword", character.EquippedOneHanded, 10, 30)
	require.True(t, w.Equip(c, character.RightHandSocket))
	return p, c, w
}

func step(p *Player, n int) {
	for i := 0; i < n; i++ {
		p.Update()
	}
}

func TestPlayer_AttackCompletes(t *testing.T) {
	p, c, w := newBound(t)
	require.True(t, c.RequestAttack())
	require.NotNil(t, p.Active())
	assert.Contains(t, testClips.Attack.Sections, p.Active().Section)

	step(p, 1)
	assert.False(t, w.CollisionEnabled())
	step(p, 1)
	assert.True(t, w.CollisionEnabled(), "window opens at frame 2")
	step(p, 2)
	assert.False(t, w.CollisionEnabled(), "window closes at frame 4")

	step(p, 1)
	assert.Equal(t, character.Attacking, c.ActionState())
	step(p, 1)
	assert.Equal(t, character.Unoccupied, c.ActionState())
	assert.Nil(t, p.Active())
}

func TestPlayer_HitOverridesAttack(t *testing.T) {
	p, c, w := newBound(t)
	require.True(t, c.RequestAttack())
	step(p, 3)
	require.True(t, w.CollisionEnabled())

	c.TakeHit(10, c.Location(), nil)
	assert.Equal(t, character.HitReaction, c.ActionState())
	assert.False(t, w.CollisionEnabled())
	assert.Equal(t, "hit_react", p.Active().Name)

	step(p, 4)
	assert.Equal(t, character.Unoccupied, c.ActionState())
}

func TestPlayer_DeathHoldsAndBlocks(t *testing.T) {
	p, c, _ := newBound(t)
	c.TakeHit(500, c.Location(), nil)
	require.Equal(t, character.Dead, c.ActionState())

	step(p, 10)
	require.NotNil(t, p.Active())
	assert.Equal(t, "death", p.Active().Name)
	assert.Equal(t, 1.0, p.Active().Progress())

	p.PlayEquip("Equip", 0)
	assert.Equal(t, "death", p.Active().Name)
}

func TestPlayer_ZeroLengthClipCompletesImmediately(t *testing.T) {
	p := NewPlayer(Clips{Attack: Clip{Sections: []string{"Attack1"}}}, nil, nil)
	c := character.New("slash", character.Collaborators{
		Attributes: attribute.New(100, 10, 1, 3),
		Animator:   p,
	}, nil)
	p.Bind(c)
	w := character.NewWeapon("sword", character.EquippedOneHanded, 10, 30)
	require.True(t, w.Equip(c, character.RightHandSocket))

	require.True(t, c.RequestAttack())
	assert.Equal(t, character.Unoccupied, c.ActionState())
}

type completions struct {
	*character.Character
	results []bool
}

func (c *completions) Complete(tok character.Token) bool {
	ok := c.Character.Complete(tok)
	c.results = append(c.results, ok)
	return ok
}

func TestPlayer_EquipCompletesThroughToken(t *testing.T) {
	p, c, w := newBound(t)
	rec := &completions{Character: c}
	p.Bind(rec)

	require.True(t, c.Disarm())
	require.NotNil(t, p.Active())
	assert.Equal(t, "equip", p.Active().Name)
	assert.Equal(t, "Unequip", p.Active().Section)
	assert.False(t, w.Drawn())

	step(p, 2)
	assert.Nil(t, p.Active())
	assert.Equal(t, []bool{true}, rec.results)
	assert.Equal(t, character.Unoccupied, c.ActionState())

	require.True(t, c.RequestAttack())
	assert.True(t, w.Drawn(), "attacking draws the sheathed weapon")
}
