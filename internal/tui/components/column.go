package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/grid/internal/models"
	"github.com/thenoetrevino/grid/internal/tui/theme"
)

// ColumnProps carries everything RenderColumn needs
type ColumnProps struct {
	Column   models.Column
	Cards    []models.Card
	Selected bool
	// SelectedCard is the selected card index, only used when Selected is set
	SelectedCard int
	// Height is the total box height, 0 for auto
	Height       int
	ScrollOffset int
	// Opacity returns the fade-in progress for an id, nil means fully visible
	Opacity func(id string) float64
}

func (p ColumnProps) opacity(id string) float64 {
	if p.Opacity == nil {
		return 1
	}
	return p.Opacity(id)
}

func renderColumnHeader(column models.Column, cardCount int, opacity float64) string {
	name := column.Name
	if name == "" {
		name = "(unnamed)"
	}
	header := truncateCell(fmt.Sprintf("%s (%d)", name, cardCount), ColumnContentWidth)
	return TitleStyle.Foreground(lipgloss.Color(fadeColor(theme.Title, opacity))).Render(header)
}

// renderScrollIndicator returns the indicator line, or a blank line to keep
// the layout stable when hidden
func renderScrollIndicator(show bool, text string) string {
	if !show {
		return "\n"
	}
	return IndicatorStyle.Render(text) + "\n"
}

// RenderColumn renders a complete column with its title and cards
//
// Layout:
//
//	{Column Name} ({count})
//	▲ (if scrolled down)
//	{Card 1}
//	{Card 2}
//	...
//	▼ (if more cards below)
func RenderColumn(p ColumnProps) string {
	content := renderColumnHeader(p.Column, len(p.Cards), p.opacity(p.Column.ID.String())) + "\n"

	if len(p.Cards) == 0 {
		content += EmptyStyle.Padding(1, 0).Render("No cards")
	} else {
		maxVisible := VisibleCards(p.Height)
		offset := min(max(p.ScrollOffset, 0), len(p.Cards)-1)
		end := min(offset+maxVisible, len(p.Cards))

		content += renderScrollIndicator(offset > 0, "▲ more above")

		var cards []string
		for i, card := range p.Cards[offset:end] {
			selected := p.Selected && offset+i == p.SelectedCard
			cards = append(cards, RenderCard(card, selected, p.opacity(card.ID.String())))
		}
		content += strings.Join(cards, "\n") + "\n"

		if end < len(p.Cards) {
			content += IndicatorStyle.Render("▼ more below")
		}
	}

	style := ColumnStyle
	if p.Selected {
		style = style.BorderForeground(lipgloss.Color(theme.SelectedBorder))
	}
	if p.Height > 0 {
		style = style.Height(p.Height - 2)
	}

	return style.Render(content)
}
