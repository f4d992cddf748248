package main

import "github.com/charmbracelet/lipgloss"

var (
	// TitleStyle is used for command headers
	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED"))

	// SuccessStyle is used for passing verdicts
	SuccessStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#10B981"))

	// ErrorStyle is used for failing verdicts
	ErrorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#EF4444"))

	// SubtleStyle is used for secondary detail lines
	SubtleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))

	rule = SubtleStyle.Render("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
)
