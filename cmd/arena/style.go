package main

import "github.com/charmbracelet/lipgloss"

var (
	styleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Bold(true)

	styleArena = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))

	styleHealth = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	styleStamina = lipgloss.NewStyle().
			Foreground(lipgloss.Color("34"))

	styleEvent = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	styleHelp = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)
