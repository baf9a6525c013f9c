package cli

import "github.com/charmbracelet/lipgloss"

// Color palette shared by the demo TUI.
var (
	colorCyan  = lipgloss.Color("36")  // Teal - primary actions
	colorBlue  = lipgloss.Color("75")  // Light blue - data
	colorWhite = lipgloss.Color("255") // Bright white - values
	colorGray  = lipgloss.Color("245") // Gray - secondary text
	colorDim   = lipgloss.Color("240") // Dim gray - muted text
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleSpark   = lipgloss.NewStyle().Foreground(colorBlue)
	styleCursor  = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleValue   = lipgloss.NewStyle().Foreground(colorWhite)
	styleLabel   = lipgloss.NewStyle().Foreground(colorGray)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
	styleSnippet = lipgloss.NewStyle().Foreground(colorGray).Border(lipgloss.RoundedBorder()).BorderForeground(colorDim).Padding(0, 1)
)
