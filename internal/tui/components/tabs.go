package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/grid/internal/tui/theme"
)

// Tab is one project tab. Opacity between 0 and 1 fades the label in.
type Tab struct {
	Label   string
	Opacity float64
}

// RenderTabs renders a tab bar with the given tabs.
// selectedIdx indicates which tab is active (0-indexed).
// width is the total width to fill with the tab gap.
//
// Layout:
//
//	╭──────╮ ╭──────╮                      [Notification]
//	│ Tab1 │ │ Tab2 │──────────────────────
//	      active    inactive
func RenderTabs(tabs []Tab, selectedIdx int, width int, notificationContent string) string {
	var renderedTabs []string

	for i, tab := range tabs {
		style := TabStyle
		if i == selectedIdx {
			style = ActiveTabStyle
		}
		style = style.Foreground(lipgloss.Color(fadeColor(theme.Normal, tab.Opacity)))

		label := tab.Label
		if label == "" {
			label = "(unnamed)"
		}
		renderedTabs = append(renderedTabs, style.Render(label))
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, renderedTabs...)

	notificationWidth := lipgloss.Width(notificationContent)
	gapWidth := max(width-lipgloss.Width(row)-notificationWidth-2, 0)
	gap := TabGapStyle.Render(strings.Repeat(" ", gapWidth))

	if notificationContent != "" {
		return lipgloss.JoinHorizontal(lipgloss.Bottom, row, gap, notificationContent)
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, row, gap)
}
