package tui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// Cyberpunk color palette
	neonCyan    = lipgloss.Color("#00FFFF")
	neonMagenta = lipgloss.Color("#FF00FF")
	neonGreen   = lipgloss.Color("#39FF14")
	neonYellow  = lipgloss.Color("#FFFF00")
	neonOrange  = lipgloss.Color("#FF6700")
	darkBg      = lipgloss.Color("#0A0E27")
	dimWhite    = lipgloss.Color("#B0B0B0")

	titleStyle = lipgloss.NewStyle().
			Background(neonMagenta).
			Foreground(darkBg).
			Bold(true).
			Padding(0, 1)

	tableBorderStyle = lipgloss.NewStyle().
				Foreground(neonMagenta)

	statsLabelStyle = lipgloss.NewStyle().
			Foreground(neonCyan).
			Bold(true).
			Padding(0, 1)

	statsValueStyle = lipgloss.NewStyle().
			Foreground(neonYellow).
			Padding(0, 1).
			Align(lipgloss.Right)

	indexStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			Width(6).
			Align(lipgloss.Right)

	usernameStyle = lipgloss.NewStyle().
			Foreground(dimWhite).
			PaddingLeft(1)

	successStyle = lipgloss.NewStyle().
			Foreground(neonGreen).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(neonOrange).
			Bold(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))
)
