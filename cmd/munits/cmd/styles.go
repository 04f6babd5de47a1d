package cmd

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette shared with the REPL
var (
	colorPrimary   = lipgloss.Color("#8B5CF6") // Violet
	colorSuccess   = lipgloss.Color("#10B981") // Emerald
	colorTextMuted = lipgloss.Color("#94A3B8") // Slate 400
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	displayStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted)
)
