package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/muesli/reflow/truncate"
	"github.com/thenoetrevino/grid/internal/models"
	"github.com/thenoetrevino/grid/internal/tui/theme"
)

// RenderCard renders a single card as a fixed-size box
//
//	┏━━━━━━━━━━━━━━━━━━━━━━┓
//	┃ {Card Name}          ┃
//	┃ first line of desc…  ┃
//	┗━━━━━━━━━━━━━━━━━━━━━━┛
func RenderCard(card models.Card, selected bool, opacity float64) string {
	bg := theme.CardBg
	border := theme.CardBorder
	if selected {
		bg = theme.SelectedBg
		border = theme.SelectedBorder
	}

	nameStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(fadeColor(theme.Normal, opacity))).
		Background(lipgloss.Color(bg))
	previewStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(fadeColor(theme.Subtle, opacity))).
		Background(lipgloss.Color(bg))

	name := card.Name
	if name == "" {
		name = "(untitled)"
		nameStyle = nameStyle.Italic(true)
	}

	content := " " + nameStyle.Render(truncateCell(name, cardTitleMaxLength)) +
		"\n " + previewStyle.Render(descriptionPreview(card.Description))

	return CardStyle.
		BorderForeground(lipgloss.Color(border)).
		BorderBackground(lipgloss.Color(bg)).
		Background(lipgloss.Color(bg)).
		Render(content)
}

// descriptionPreview returns the first non-empty line of a description,
// truncated to fit the card.
func descriptionPreview(description string) string {
	for _, line := range strings.Split(description, "\n") {
		line = strings.TrimSpace(strings.TrimLeft(line, "#>-* "))
		if line != "" {
			return truncateCell(line, cardTitleMaxLength)
		}
	}
	return "no description"
}

// truncateCell shortens s to width terminal cells with an ellipsis.
func truncateCell(s string, width int) string {
	return truncate.StringWithTail(s, uint(width), "…")
}
