package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/grid/internal/store"
	"github.com/thenoetrevino/grid/internal/tui/state"
)

// updateNameInput drives the single-line input used for new projects and
// columns. Enter dispatches whatever was typed, empty included.
func (m Model) updateNameInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.InputState.Clear()
			m.UiState.SetMode(state.NormalMode)
			return m, nil

		case "enter":
			return m.submitNameInput()
		}
	}

	return m, m.InputState.Update(msg)
}

func (m Model) submitNameInput() (tea.Model, tea.Cmd) {
	name := m.InputState.Value()
	mode := m.UiState.Mode()

	m.InputState.Clear()
	m.UiState.SetMode(state.NormalMode)

	switch mode {
	case state.CreateProjectMode:
		cmd := m.dispatch(store.AddProject{Name: name})
		m.AppState.SelectLastProject()
		m.UiState.ResetSelection()
		return m, cmd

	case state.AddColumnMode:
		project, ok := m.AppState.CurrentProject()
		if !ok {
			return m, nil
		}
		cmd := m.dispatch(store.AddColumn{Name: name, ProjectID: project.ID})
		last := len(m.AppState.Columns()) - 1
		m.UiState.SetSelectedColumn(last)
		m.UiState.SetSelectedCard(0)
		m.UiState.EnsureSelectionVisible(last)
		return m, cmd
	}

	return m, nil
}
