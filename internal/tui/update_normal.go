package tui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/grid/internal/models"
	"github.com/thenoetrevino/grid/internal/tui/huhforms"
	"github.com/thenoetrevino/grid/internal/tui/state"
)

// handleNormalMode maps a key press on the board to a navigation step or
// opens the input, form or confirmation for an action.
func (m Model) handleNormalMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	km := m.Config.KeyMappings
	m.NotificationState.Clear()

	switch msg.String() {
	case km.Quit, "ctrl+c":
		return m, tea.Quit

	case km.ShowHelp:
		m.UiState.SetMode(state.HelpMode)
		return m, nil

	// Projects
	case km.CreateProject:
		m.UiState.SetMode(state.CreateProjectMode)
		return m, m.InputState.Open("Create Project", "Project name...")

	case km.RenameProject:
		return m.openRenameForm()

	case km.DeleteProject:
		if _, ok := m.AppState.CurrentProject(); !ok {
			m.notifyInfo("No project to delete")
			return m, nil
		}
		m.UiState.SetMode(state.DeleteProjectConfirmMode)
		return m, nil

	case km.PrevProject:
		m.switchProject(-1)
		return m, nil

	case km.NextProject:
		m.switchProject(1)
		return m, nil

	// Columns
	case km.CreateColumn:
		if _, ok := m.AppState.CurrentProject(); !ok {
			m.notifyInfo("Create a project first")
			return m, nil
		}
		m.UiState.SetMode(state.AddColumnMode)
		return m, m.InputState.Open("Add Column to Project", "Column name...")

	case km.DeleteColumn:
		if _, ok := m.currentColumn(); !ok {
			m.notifyInfo("No column to delete")
			return m, nil
		}
		m.UiState.SetMode(state.DeleteColumnConfirmMode)
		return m, nil

	case km.PrevColumn:
		m.moveColumn(-1)
		return m, nil

	case km.NextColumn:
		m.moveColumn(1)
		return m, nil

	case km.ScrollViewportLeft:
		m.UiState.ScrollViewportLeft()
		return m, nil

	case km.ScrollViewportRight:
		m.UiState.ScrollViewportRight(len(m.AppState.Columns()))
		return m, nil

	// Cards
	case km.AddCard:
		return m.openCardForm()

	case km.DeleteCard:
		if _, ok := m.currentCard(); !ok {
			m.notifyInfo("No card selected")
			return m, nil
		}
		m.UiState.SetMode(state.DeleteCardConfirmMode)
		return m, nil

	case km.ViewCard, "enter":
		if _, ok := m.currentCard(); !ok {
			m.notifyInfo("No card selected")
			return m, nil
		}
		m.UiState.SetMode(state.CardDetailMode)
		return m, nil

	case km.PrevCard:
		m.moveCard(-1)
		return m, nil

	case km.NextCard:
		m.moveCard(1)
		return m, nil
	}

	return m, nil
}

// switchProject activates the neighbouring project tab
func (m *Model) switchProject(delta int) {
	if !m.AppState.SetSelectedProject(m.AppState.SelectedProject() + delta) {
		if delta < 0 {
			m.notifyBoundary(models.ErrAlreadyFirstProject)
		} else {
			m.notifyBoundary(models.ErrAlreadyLastProject)
		}
		return
	}
	m.UiState.ResetSelection()
}

// moveColumn moves the column selection and scrolls it into view
func (m *Model) moveColumn(delta int) {
	next := m.UiState.SelectedColumn() + delta
	if next < 0 {
		m.notifyBoundary(models.ErrAlreadyFirstColumn)
		return
	}
	if next >= len(m.AppState.Columns()) {
		m.notifyBoundary(models.ErrAlreadyLastColumn)
		return
	}
	m.UiState.SetSelectedColumn(next)
	m.UiState.EnsureSelectionVisible(next)
	m.UiState.ClampCard(len(m.currentCards()))
}

// moveCard moves the card selection within the selected column
func (m *Model) moveCard(delta int) {
	cards := m.currentCards()
	next := m.UiState.SelectedCard() + delta
	if next < 0 {
		m.notifyBoundary(models.ErrAlreadyFirstCard)
		return
	}
	if next >= len(cards) {
		m.notifyBoundary(models.ErrAlreadyLastCard)
		return
	}
	m.UiState.SetSelectedCard(next)

	if column, ok := m.currentColumn(); ok {
		m.UiState.EnsureCardVisible(column.ID, next, visibleCardsFor(m.UiState))
	}
}

// openCardForm opens the add-card form for the selected column
func (m Model) openCardForm() (tea.Model, tea.Cmd) {
	column, ok := m.currentColumn()
	if !ok {
		m.notifyInfo("Add a column first")
		return m, nil
	}

	m.FormState.ResetCardForm(column.ID)
	m.FormState.CardForm = huhforms.CreateCardForm(
		&m.FormState.FormCardName,
		&m.FormState.FormCardDesc,
		&m.FormState.FormCardConfirm,
	).WithTheme(huhforms.CreateGridTheme(m.Config.ColorScheme))

	m.UiState.SetMode(state.CardFormMode)
	return m, m.FormState.CardForm.Init()
}

// openRenameForm opens the rename form pre-filled with the project's name
func (m Model) openRenameForm() (tea.Model, tea.Cmd) {
	project, ok := m.AppState.CurrentProject()
	if !ok {
		m.notifyInfo("No project to rename")
		return m, nil
	}

	m.FormState.ResetRenameForm(project.ID, project.Name)
	m.FormState.RenameForm = huhforms.CreateRenameProjectForm(&m.FormState.FormRenameName).
		WithTheme(huhforms.CreateGridTheme(m.Config.ColorScheme))

	m.UiState.SetMode(state.RenameProjectMode)
	return m, m.FormState.RenameForm.Init()
}

func (m *Model) notifyInfo(message string) {
	m.NotificationState.Add(state.LevelInfo, message)
}

// notifyBoundary shows a navigation error as a sentence-cased info banner
func (m *Model) notifyBoundary(err error) {
	msg := err.Error()
	m.notifyInfo(strings.ToUpper(msg[:1]) + msg[1:])
}
