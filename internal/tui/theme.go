package tui

import (
	"charm.land/lipgloss/v2"
)

// Color palette — calm, readable in both dark terminals
var (
	colorPrimary = lipgloss.Color("#6366F1") // Indigo
	colorAccent  = lipgloss.Color("#F59E0B") // Amber
	colorSuccess = lipgloss.Color("#22C55E") // Green
	colorError   = lipgloss.Color("#F43F5E") // Rose
	colorText    = lipgloss.Color("#F8FAFC") // White
	colorDim     = lipgloss.Color("#94A3B8") // Slate
	colorCard    = lipgloss.Color("#1E293B") // Dark Slate
	colorBorder  = lipgloss.Color("#334155") // Slate
	colorBarFill = lipgloss.Color("#14B8A6") // Teal
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	promptStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	hintStyle = lipgloss.NewStyle().
			Foreground(colorDim).
			Italic(true)

	correctStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Bold(true)

	wrongStyle = lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true)

	selectedStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	plainStyle = lipgloss.NewStyle().
			Foreground(colorText)

	accentStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	cardStyle = lipgloss.NewStyle().
			Background(colorCard).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(1, 2)
)
