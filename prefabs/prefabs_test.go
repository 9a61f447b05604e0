package prefabs

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/milk9111/openworld/character"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLoadCharacterSpec_Embedded(t *testing.T) {
	spec, err := LoadCharacterSpec("character.yaml")
	require.NoError(t, err)

	assert.Equal(t, "Knight", spec.Name)
	assert.Greater(t, spec.Health, 0.0)
	assert.Equal(t, []string{"Attack1", "Attack2"}, spec.Montages.Attack.Sections)

	clips := spec.Montages.Clips()
	assert.Less(t, clips.Attack.WindowStart, clips.Attack.WindowEnd)
	assert.LessOrEqual(t, clips.Attack.WindowEnd, clips.Attack.Frames)
}

func TestLoadCharacterSpec_RequiresHealth(t *testing.T) {
	dir := t.TempDir()
	withDir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.yaml"), []byte("name: Nobody\n"), 0o644))

	_, err := LoadCharacterSpec("broken.yaml")
	assert.Error(t, err)
}

func TestLoad_DiskShadowsEmbedded(t *testing.T) {
	dir := t.TempDir()
	withDir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "character.yaml"), []byte("name: Tuned\nhealth: 5\n"), 0o644))

	spec, err := LoadCharacterSpec("prefabs/character.yaml")
	require.NoError(t, err)
	assert.Equal(t, "Tuned", spec.Name)
	assert.Equal(t, 14.0, spec.Radius, "radius defaults when unset")
}

func TestModTime(t *testing.T) {
	dir := t.TempDir()
	withDir(t, dir)

	_, ok := ModTime("character.yaml")
	assert.False(t, ok, "embedded only")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "character.yaml"), []byte("name: X\n"), 0o644))
	mod, ok := ModTime("prefabs/character.yaml")
	require.True(t, ok)
	assert.False(t, mod.IsZero())
}

func TestLoadWeaponsSpec(t *testing.T) {
	weapons, err := LoadWeaponsSpec()
	require.NoError(t, err)
	require.Contains(t, weapons, "Sword")

	w, err := weapons["Sword"].Build()
	require.NoError(t, err)
	assert.Equal(t, character.EquippedOneHanded, w.EquipState)
	assert.Nil(t, w.Owner())
}

func TestWeaponSpec_BuildRejectsUnequipped(t *testing.T) {
	_, err := WeaponSpec{Name: "Stick", EquipState: "unequipped"}.Build()
	assert.Error(t, err)

	_, err = WeaponSpec{Name: "Stick", EquipState: "three_handed"}.Build()
	assert.Error(t, err)
}

func TestLoadArenaSpec(t *testing.T) {
	arena, err := LoadArenaSpec("arena.yaml")
	require.NoError(t, err)

	assert.NotEmpty(t, arena.Weapons)
	assert.NotEmpty(t, arena.Souls)
	assert.NotEmpty(t, arena.Dummies)
	assert.Greater(t, arena.Width, 0.0)
}

func TestLoadScript(t *testing.T) {
	src, err := LoadScript("attack_section.tengo")
	require.NoError(t, err)
	assert.Contains(t, string(src), "previous")
}

func TestYAMLColor(t *testing.T) {
	var out struct {
		Solid YAMLColor  `yaml:"solid"`
		Alpha YAMLColor  `yaml:"alpha"`
		Unset *YAMLColor `yaml:"unset"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("solid: \"#ff8000\"\nalpha: \"00ff0080\"\n"), &out))

	assert.Equal(t, color.NRGBA{R: 255, G: 128, A: 255}, out.Solid.Color)
	assert.Equal(t, color.NRGBA{G: 255, A: 128}, out.Alpha.Color)
	assert.Equal(t, color.White, out.Unset.Or(color.White))

	var bad struct {
		C YAMLColor `yaml:"c"`
	}
	assert.Error(t, yaml.Unmarshal([]byte("c: \"#fff\"\n"), &bad))
}

func TestWatcher_ReportsEdits(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(nil, dir)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "arena.yaml"), []byte("name: x\n"), 0o644))

	var got []Change
	require.Eventually(t, func() bool {
		w.Drain(func(c Change) { got = append(got, c) })
		return len(got) > 0
	}, 2*time.Second, 10*time.Millisecond, "no change reported")

	assert.Equal(t, "arena.yaml", got[0].Name)
	assert.Equal(t, SpecChanged, got[0].Kind)
}

func TestWatcher_NilDrain(t *testing.T) {
	var w *Watcher
	assert.Equal(t, 0, w.Drain(func(Change) {}))
	assert.NoError(t, w.Close())
}

func withDir(t *testing.T, dir string) {
	t.Helper()
	prev := Dir
	Dir = dir
	t.Cleanup(func() { Dir = prev })
}
