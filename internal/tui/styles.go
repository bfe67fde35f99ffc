package tui

import "github.com/charmbracelet/lipgloss"

// Colors used throughout the day view.
var (
	ColorRed   = lipgloss.Color("#FF0000")
	ColorGreen = lipgloss.Color("#00FF00")
	ColorCyan  = lipgloss.Color("#00FFFF")
	ColorGray  = lipgloss.Color("#666666")
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorCyan)

	RunningStyle = lipgloss.NewStyle().
			Foreground(ColorGreen)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorRed)

	PromptStyle = lipgloss.NewStyle().
			Bold(true)
)
