// Package styles holds the lipgloss styles used by CLI output
package styles

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/tree"
	"github.com/thenoetrevino/grid/internal/config/colors"
	"github.com/thenoetrevino/grid/internal/models"
	"github.com/thenoetrevino/grid/internal/store"
)

var (
	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For field labels like "id:"
	ValueStyle    lipgloss.Style // For field values
	SectionStyle  lipgloss.Style // For section headers like "Orphaned cards"

	// Status styles
	SuccessStyle lipgloss.Style
	WarningStyle lipgloss.Style

	enumeratorStyle lipgloss.Style
)

func init() {
	Init(*colors.Default())
}

// Init initializes all CLI styles with the given color scheme
func Init(c colors.ColorScheme) {
	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(c.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(c.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Normal))

	SectionStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Accent)).
		Bold(true).
		MarginTop(1)

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(c.InfoFg)).
		Background(lipgloss.Color(c.InfoBg)).
		Padding(0, 1)

	WarningStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(c.ErrorFg)).
		Background(lipgloss.Color(c.ErrorBg)).
		Padding(0, 1)

	enumeratorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Subtle)).
		PaddingRight(1)
}

// ColoredText renders text with a hex color
func ColoredText(text, hexColor string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(hexColor)).
		Render(text)
}

func idSuffix(id fmt.Stringer) string {
	return SubtitleStyle.Render("(" + id.String() + ")")
}

func displayName(name string) string {
	if name == "" {
		return "(unnamed)"
	}
	return name
}

func cardLine(c models.Card) string {
	return ValueStyle.Render(displayName(c.Name)) + " " + idSuffix(c.ID)
}

// RenderBoardTree renders the board as project → column → card trees.
// Columns whose project no longer exists and cards whose column no longer
// exists are listed in their own sections.
func RenderBoardTree(board store.State) string {
	if len(board.Projects) == 0 && len(board.Columns) == 0 && len(board.Cards) == 0 {
		return SubtitleStyle.Render("Board is empty")
	}

	root := tree.Root(TitleStyle.Render("Board")).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(enumeratorStyle)

	for _, p := range board.Projects {
		projectNode := tree.Root(LabelStyle.Render(displayName(p.Name)) + " " + idSuffix(p.ID))
		for _, col := range board.ColumnsInProject(p.ID) {
			projectNode.Child(columnNode(board, col, ValueStyle.Bold(true).Render(displayName(col.Name))))
		}
		root.Child(projectNode)
	}

	for _, col := range strayColumns(board) {
		label := SectionStyle.Render("Detached column") + " " + ValueStyle.Render(displayName(col.Name))
		root.Child(columnNode(board, col, label))
	}

	if orphans := board.OrphanedCards(); len(orphans) > 0 {
		orphanNode := tree.Root(SectionStyle.Render("Orphaned cards"))
		for _, c := range orphans {
			orphanNode.Child(cardLine(c))
		}
		root.Child(orphanNode)
	}

	return root.String()
}

func columnNode(board store.State, col models.Column, label string) *tree.Tree {
	node := tree.Root(label + " " + idSuffix(col.ID))
	for _, c := range board.CardsInColumn(col.ID) {
		node.Child(cardLine(c))
	}
	return node
}

// strayColumns returns columns whose project is gone
func strayColumns(board store.State) []models.Column {
	var stray []models.Column
	for _, col := range board.Columns {
		if _, ok := board.Project(col.ProjectID); !ok {
			stray = append(stray, col)
		}
	}
	return stray
}

// RenderSummary renders a one-line count of the board's records
func RenderSummary(board store.State) string {
	return SuccessStyle.Render(fmt.Sprintf("%d projects · %d columns · %d cards",
		len(board.Projects), len(board.Columns), len(board.Cards)))
}
