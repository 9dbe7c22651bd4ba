package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/grid/internal/tui/anim"
	"github.com/thenoetrevino/grid/internal/tui/state"
)

// inputWidth is the width of the project and column name field
const inputWidth = 44

// Update handles all messages and updates the model accordingly
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.UiState.SetWidth(msg.Width)
		m.UiState.SetHeight(msg.Height)
		m.InputState.SetWidth(inputWidth)
		m.clampSelection()
		return m, nil

	case anim.FrameMsg:
		return m, m.Anim.Advance()
	}

	// Forms and inputs receive every message, not only key presses
	switch m.UiState.Mode() {
	case state.CardFormMode:
		return m.updateCardForm(msg)
	case state.RenameProjectMode:
		return m.updateRenameForm(msg)
	case state.CreateProjectMode, state.AddColumnMode:
		return m.updateNameInput(msg)
	}

	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	switch m.UiState.Mode() {
	case state.NormalMode:
		return m.handleNormalMode(keyMsg)
	case state.DeleteProjectConfirmMode:
		return m.handleDeleteProjectConfirm(keyMsg)
	case state.DeleteColumnConfirmMode:
		return m.handleDeleteColumnConfirm(keyMsg)
	case state.DeleteCardConfirmMode:
		return m.handleDeleteCardConfirm(keyMsg)
	case state.CardDetailMode:
		return m.handleCardDetailMode(keyMsg)
	case state.HelpMode:
		return m.handleHelpMode(keyMsg)
	}

	return m, nil
}
