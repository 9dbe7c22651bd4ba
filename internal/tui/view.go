package tui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/grid/internal/tui/components"
	"github.com/thenoetrevino/grid/internal/tui/notifications"
	"github.com/thenoetrevino/grid/internal/tui/theme"
)

// View renders the current state of the application
func (m Model) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	v.BackgroundColor = lipgloss.Color(theme.Background)
	return v
}

// render composes the board and any open modal into one string
func (m Model) render() string {
	if m.UiState.Width() == 0 {
		return "Loading..."
	}

	base := lipgloss.NewLayer(m.renderBoard())
	layers := []*lipgloss.Layer{base}
	if modal := m.renderModalLayer(); modal != nil {
		layers = append(layers, modal.Z(1))
	}

	return lipgloss.NewCanvas(layers...).Render()
}

// renderBoard renders tabs, the visible columns and the status bar
//
//	╭──────╮╭──────╮
//	│ Tab1 ││ Tab2 │──────────────
//	╭────────╮ ╭────────╮
//	│ Column │ │ Column │
//	╰────────╯ ╰────────╯
//	grid - kanban board       press ? for help
func (m Model) renderBoard() string {
	tabs := m.renderTabs()

	var body string
	switch {
	case len(m.AppState.Projects()) == 0:
		body = m.renderEmptyBoard("No projects yet. Press " + m.Config.KeyMappings.CreateProject + " to create one.")
	case len(m.AppState.Columns()) == 0:
		body = m.renderEmptyBoard("No columns yet. Press " + m.Config.KeyMappings.CreateColumn + " to add one.")
	default:
		body = m.renderColumns()
	}

	statusBar := components.RenderStatusBar(components.StatusBarProps{
		Width:   m.UiState.Width(),
		Mode:    m.UiState.Mode().String(),
		HelpKey: m.Config.KeyMappings.ShowHelp,
	})

	return lipgloss.JoinVertical(lipgloss.Left, tabs, body, statusBar)
}

func (m Model) renderTabs() string {
	projects := m.AppState.Projects()
	tabs := make([]components.Tab, 0, len(projects))
	for _, p := range projects {
		tabs = append(tabs, components.Tab{Label: p.Name, Opacity: m.Anim.Opacity(p.ID.String())})
	}

	var notification string
	if n, ok := m.NotificationState.Latest(); ok {
		notification = notifications.RenderInlineFromState(n)
	}

	return components.RenderTabs(tabs, m.AppState.SelectedProject(), m.UiState.Width(), notification)
}

func (m Model) renderEmptyBoard(message string) string {
	return lipgloss.Place(
		m.UiState.Width(), m.UiState.ContentHeight(),
		lipgloss.Center, lipgloss.Center,
		components.EmptyStyle.Render(message),
	)
}

// renderColumns renders the columns inside the horizontal viewport
func (m Model) renderColumns() string {
	columns := m.AppState.Columns()
	start := min(m.UiState.ViewportOffset(), len(columns))
	end := min(start+m.UiState.ViewportSize(), len(columns))
	height := m.UiState.ContentHeight()

	var rendered []string
	if start > 0 {
		rendered = append(rendered, components.IndicatorStyle.Render("◀"))
	}
	for i := start; i < end; i++ {
		column := columns[i]
		selected := i == m.UiState.SelectedColumn()
		rendered = append(rendered, components.RenderColumn(components.ColumnProps{
			Column:       column,
			Cards:        m.AppState.Cards(i),
			Selected:     selected,
			SelectedCard: m.UiState.SelectedCard(),
			Height:       height,
			ScrollOffset: m.UiState.CardScrollOffset(column.ID),
			Opacity:      m.Anim.Opacity,
		}))
		rendered = append(rendered, " ")
	}
	if end < len(columns) {
		rendered = append(rendered, components.IndicatorStyle.Render("▶"))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// renderInputBox renders the project or column name field
func (m Model) renderInputBox() string {
	var b strings.Builder
	b.WriteString(components.TitleStyle.Render(m.InputState.Prompt))
	b.WriteString("\n\n")
	b.WriteString(m.InputState.View())
	b.WriteString("\n\n")
	b.WriteString(components.EmptyStyle.Render("enter to save · esc to cancel"))
	return components.CreateInputBoxStyle.Width(inputWidth + 6).Render(b.String())
}
