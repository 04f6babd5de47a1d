// ============================================================================
// mUnits - Physikalische Größen und Einheiten
// ============================================================================
//
// Package:     repl
// Description: Styles for the REPL
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package repl

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/munits/foundation/utils/stringx"
)

// Color Palette - same as the list command
var (
	ColorPrimary   = lipgloss.Color("#8B5CF6") // Violet
	ColorSecondary = lipgloss.Color("#06B6D4") // Cyan
	ColorSuccess   = lipgloss.Color("#10B981") // Emerald
	ColorError     = lipgloss.Color("#EF4444") // Red
	ColorDimmed    = lipgloss.Color("#374151") // Dark Gray

	ColorText      = lipgloss.Color("#F8FAFC") // Slate 50
	ColorTextMuted = lipgloss.Color("#94A3B8") // Slate 400
	ColorTextDim   = lipgloss.Color("#64748B") // Slate 500
)

var (
	LogoStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	KindActiveStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true)

	KindInactiveStyle = lipgloss.NewStyle().
				Foreground(ColorTextDim)

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorDimmed).
			Padding(0, 1)
)

// Row styles
var (
	RowStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	RowDisplayStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)

	RowSourceStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)
)

// Help styles
var (
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			MarginTop(1)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)
)

// Markers
const (
	MarkerDisplay = "*"
	MarkerSource  = ">"
)

// Logo
const Logo = "mUnits REPL"

// RenderKeyHint renders a keyboard shortcut hint
func RenderKeyHint(key, description string) string {
	return HelpKeyStyle.Render(key) + " " + HelpDescStyle.Render(description)
}

// RenderRow renders one conversion row with its marker, cut to width
// runes when width is positive
func RenderRow(row Row, width int) string {
	text := row.Text
	if width > 2 {
		text = stringx.Truncate(text, width-2, "…")
	}

	marker := " "
	style := RowStyle
	switch {
	case row.Display:
		marker = MarkerDisplay
		style = RowDisplayStyle
	case row.Source:
		marker = MarkerSource
		style = RowSourceStyle
	}
	return marker + " " + style.Render(text)
}
