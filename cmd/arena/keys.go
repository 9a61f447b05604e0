package main

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Forward   key.Binding
	Back      key.Binding
	Left      key.Binding
	Right     key.Binding
	TurnLeft  key.Binding
	TurnRight key.Binding
	Jump      key.Binding
	Attack    key.Binding
	Equip     key.Binding
	Pause     key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Forward:   key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "forward")),
		Back:      key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "back")),
		Left:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "strafe left")),
		Right:     key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "strafe right")),
		TurnLeft:  key.NewBinding(key.WithKeys("left", "q"), key.WithHelp("←/q", "turn left")),
		TurnRight: key.NewBinding(key.WithKeys("right", "r"), key.WithHelp("→/r", "turn right")),
		Jump:      key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "jump")),
		Attack:    key.NewBinding(key.WithKeys("j"), key.WithHelp("j", "attack")),
		Equip:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "equip")),
		Pause:     key.NewBinding(key.WithKeys("p", "esc"), key.WithHelp("p", "pause")),
		Quit:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (k keyMap) help() string {
	out := ""
	for i, b := range []key.Binding{k.Forward, k.Back, k.Left, k.Right, k.TurnLeft, k.TurnRight, k.Jump, k.Attack, k.Equip, k.Pause, k.Quit} {
		if i > 0 {
			out += "  "
		}
		h := b.Help()
		out += h.Key + " " + h.Desc
	}
	return out
}
