package main

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/milk9111/openworld/config"
	"github.com/milk9111/openworld/ecs"
	"github.com/milk9111/openworld/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newModel(t *testing.T) Model {
	t.Helper()
	m, err := New(config.Config{Arena: "arena.yaml", Character: "character.yaml"}, nil)
	require.NoError(t, err)
	return m
}

func send(m Model, msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_TickAdvancesFrames(t *testing.T) {
	m := newModel(t)

	m, cmd := send(m, tickMsg(time.Now()))
	assert.Equal(t, framesPerTick, m.frames)
	assert.NotNil(t, cmd, "ticking reschedules itself")
}

func TestModel_HeldMoveDecays(t *testing.T) {
	m := newModel(t)
	tr, ok := ecs.Get(m.world, m.player, component.TransformComponent.Kind())
	require.True(t, ok)
	startX := tr.X

	m, _ = send(m, runes("w"))
	assert.Equal(t, 1.0, m.controls.input.MoveForward)

	for i := 0; i < holdTicks; i++ {
		m, _ = send(m, tickMsg(time.Now()))
	}
	assert.Greater(t, tr.X, startX)
	assert.Zero(t, m.controls.input.MoveForward, "released after the hold expires")

	stopped := tr.X
	m, _ = send(m, tickMsg(time.Now()))
	assert.InDelta(t, stopped, tr.X, 1e-9)
}

func TestModel_PressesLastOneFrame(t *testing.T) {
	m := newModel(t)

	m, _ = send(m, runes("j"))
	assert.True(t, m.controls.input.AttackPressed)

	m, _ = send(m, tickMsg(time.Now()))
	assert.False(t, m.controls.input.AttackPressed)
}

func TestModel_PauseStopsSimulation(t *testing.T) {
	m := newModel(t)

	m, _ = send(m, runes("p"))
	require.True(t, m.paused)
	m, _ = send(m, tickMsg(time.Now()))
	assert.Zero(t, m.frames)
	assert.Contains(t, m.View(), "PAUSED")
}

func TestModel_Quit(t *testing.T) {
	m := newModel(t)

	_, cmd := send(m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_View(t *testing.T) {
	m := newModel(t)
	m, _ = send(m, tea.WindowSizeMsg{Width: 100, Height: 40})

	view := m.View()
	assert.Contains(t, view, "@")
	assert.Contains(t, view, "D")
	assert.Contains(t, view, "$")
	assert.Contains(t, view, "^")
	assert.Contains(t, view, "unoccupied/unequipped")
	assert.True(t, strings.Contains(view, "j attack"))
}

func TestFacingGlyph(t *testing.T) {
	tests := []struct {
		yaw  float64
		want rune
	}{
		{0, '>'},
		{1.5708, 'v'},
		{3.14159, '<'},
		{-1.5708, '^'},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, facingGlyph(tt.yaw), "yaw %v", tt.yaw)
	}
}

func TestMeter(t *testing.T) {
	assert.Equal(t, strings.Repeat("█", barWidth), meter(1))
	assert.Equal(t, strings.Repeat("░", barWidth), meter(0))
	assert.Equal(t, strings.Repeat("█", 5)+strings.Repeat("░", 5), meter(0.5))
}
