package components

import (
	"charm.land/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"
	"github.com/thenoetrevino/grid/internal/models"
	"github.com/thenoetrevino/grid/internal/tui/theme"
)

type CardDetailProps struct {
	Card       models.Card
	ColumnName string
	Width      int
}

// RenderCardDetail renders the read-only card modal
//
//	{Card Name}
//	in {Column}
//
//	{rendered description}
//
//	esc to close
func RenderCardDetail(props CardDetailProps) string {
	width := max(props.Width, 20)

	name := props.Card.Name
	if name == "" {
		name = "(untitled)"
	}
	title := TitleStyle.Render(wordwrap.String(name, width))
	subtle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))

	content := lipgloss.JoinVertical(lipgloss.Left,
		title,
		subtle.Render("in "+props.ColumnName),
		"",
		RenderDescription(DescriptionProps{Description: props.Card.Description, Width: width}),
		"",
		subtle.Render("esc to close"),
	)

	return DetailBoxStyle.Width(width + 4).Render(content)
}
