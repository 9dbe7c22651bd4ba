package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/grid/internal/config"
	"github.com/thenoetrevino/grid/internal/tui/theme"
)

type helpSection struct {
	title string
	rows  [][2]string
}

func helpSections(km config.KeyMappings) []helpSection {
	return []helpSection{
		{"Projects", [][2]string{
			{km.CreateProject, "create project"},
			{km.RenameProject, "rename project"},
			{km.DeleteProject, "delete project"},
			{km.PrevProject + " " + km.NextProject, "switch project"},
		}},
		{"Columns", [][2]string{
			{km.CreateColumn, "create column"},
			{km.DeleteColumn, "delete column"},
			{km.PrevColumn + " " + km.NextColumn, "move between columns"},
			{km.ScrollViewportLeft + " " + km.ScrollViewportRight, "scroll the board"},
		}},
		{"Cards", [][2]string{
			{km.AddCard, "add card"},
			{km.DeleteCard, "delete card"},
			{km.ViewCard, "view card"},
			{km.PrevCard + " " + km.NextCard, "move between cards"},
			{km.SaveForm, "save form"},
		}},
		{"Other", [][2]string{
			{km.ShowHelp, "toggle help"},
			{km.Quit, "quit"},
		}},
	}
}

// RenderHelp renders the keyboard shortcut reference from the active key map
func RenderHelp(km config.KeyMappings) string {
	keyStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Highlight))
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Normal))

	var b strings.Builder
	b.WriteString(TitleStyle.Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	for _, section := range helpSections(km) {
		b.WriteString("\n")
		b.WriteString(TitleStyle.Render(section.title))
		b.WriteString("\n")
		for _, row := range section.rows {
			b.WriteString(fmt.Sprintf("  %s %s\n",
				keyStyle.Width(10).Render(row[0]),
				descStyle.Render(row[1])))
		}
	}
	b.WriteString("\n")
	b.WriteString(EmptyStyle.Render("press " + km.ShowHelp + " or esc to close"))

	return HelpBoxStyle.Render(b.String())
}
