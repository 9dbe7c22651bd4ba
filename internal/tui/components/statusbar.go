package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/grid/internal/tui/theme"
)

type StatusBarProps struct {
	Width int
	Mode  string
	// HelpKey is the configured key that opens the help screen
	HelpKey string
}

// RenderStatusBar renders a status bar with left and right aligned text
// Left side: "grid - kanban board" and the current mode
// Right side: "press ? for help"
func RenderStatusBar(props StatusBarProps) string {
	leftText := "grid - kanban board"
	if props.Mode != "" {
		leftText += " · " + props.Mode
	}
	helpKey := props.HelpKey
	if helpKey == "" {
		helpKey = "?"
	}
	rightText := "press " + helpKey + " for help"

	style := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))

	leftRendered := style.Render(leftText)
	rightRendered := style.Render(rightText)

	gapWidth := max(props.Width-lipgloss.Width(leftRendered)-lipgloss.Width(rightRendered), 1)

	return lipgloss.JoinHorizontal(lipgloss.Top, leftRendered, strings.Repeat(" ", gapWidth), rightRendered)
}
