package tui

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/grid/internal/store"
	"github.com/thenoetrevino/grid/internal/tui/state"
)

// confirmKey reports whether a confirmation key was accepted (y) or
// declined (n or esc). handled is false for any other key.
func confirmKey(msg tea.KeyPressMsg) (accepted, handled bool) {
	switch msg.String() {
	case "y", "Y":
		return true, true
	case "n", "N", "esc":
		return false, true
	}
	return false, false
}

// handleDeleteProjectConfirm removes the active project on y
func (m Model) handleDeleteProjectConfirm(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	accepted, handled := confirmKey(msg)
	if !handled {
		return m, nil
	}
	m.UiState.SetMode(state.NormalMode)
	if !accepted {
		return m, nil
	}

	project, ok := m.AppState.CurrentProject()
	if !ok {
		return m, nil
	}
	slog.Info("removing project", "id", project.ID)
	cmd := m.dispatch(store.RemoveProject{ID: project.ID})
	m.UiState.ResetSelection()
	m.clampSelection()
	return m, cmd
}

// handleDeleteColumnConfirm removes the selected column on y.
// Its cards stay in the store.
func (m Model) handleDeleteColumnConfirm(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	accepted, handled := confirmKey(msg)
	if !handled {
		return m, nil
	}
	m.UiState.SetMode(state.NormalMode)
	if !accepted {
		return m, nil
	}

	column, ok := m.currentColumn()
	if !ok {
		return m, nil
	}
	slog.Info("removing column", "id", column.ID)
	m.UiState.SetSelectedCard(0)
	return m, m.dispatch(store.RemoveColumn{ID: column.ID})
}

// handleDeleteCardConfirm removes the selected card on y
func (m Model) handleDeleteCardConfirm(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	accepted, handled := confirmKey(msg)
	if !handled {
		return m, nil
	}
	m.UiState.SetMode(state.NormalMode)
	if !accepted {
		return m, nil
	}

	card, ok := m.currentCard()
	if !ok {
		return m, nil
	}
	slog.Info("removing card", "id", card.ID)
	return m, m.dispatch(store.RemoveCard{ID: card.ID})
}
