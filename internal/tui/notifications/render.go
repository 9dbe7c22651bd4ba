package notifications

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/grid/internal/tui/state"
)

// RenderInline renders a compact one-line notification for the tab bar
func RenderInline(severity Severity, message string) string {
	s := severity.style()

	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.foreground)).
		Background(lipgloss.Color(s.background)).
		Padding(0, 1).
		Render(s.icon + " " + message)
}

// RenderInlineFromState renders the notification with its stored level
func RenderInlineFromState(n state.Notification) string {
	return RenderInline(severityOf(n.Level), n.Message)
}
