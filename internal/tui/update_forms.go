package tui

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"
	"github.com/thenoetrevino/grid/internal/store"
	"github.com/thenoetrevino/grid/internal/tui/state"
)

// formConfig holds what the generic form handlers need to drive one form
type formConfig struct {
	form       *huh.Form
	setForm    func(*huh.Form)
	clearForm  func()
	onComplete func() tea.Cmd
	confirmPtr *bool
}

// handleFormUpdate forwards a message to the form and finishes it once huh
// reports completion
func (m Model) handleFormUpdate(msg tea.Msg, cfg formConfig) (tea.Model, tea.Cmd) {
	if cfg.form == nil {
		m.UiState.SetMode(state.NormalMode)
		return m, nil
	}

	model, cmd := cfg.form.Update(msg)
	form := model.(*huh.Form)
	cfg.setForm(form)

	if form.State == huh.StateCompleted {
		return m.finishForm(cfg)
	}
	if form.State == huh.StateAborted {
		m.UiState.SetMode(state.NormalMode)
		cfg.setForm(nil)
		cfg.clearForm()
		return m, nil
	}

	return m, cmd
}

// handleFormSave handles the save shortcut: the form is submitted as if
// the confirm button had been pressed
func (m Model) handleFormSave(cfg formConfig) (tea.Model, tea.Cmd) {
	if cfg.form == nil {
		m.UiState.SetMode(state.NormalMode)
		return m, nil
	}

	if cfg.confirmPtr != nil {
		*cfg.confirmPtr = true
	}
	cfg.form.State = huh.StateCompleted

	return m.finishForm(cfg)
}

func (m Model) finishForm(cfg formConfig) (tea.Model, tea.Cmd) {
	cmd := cfg.onComplete()
	m.UiState.SetMode(state.NormalMode)
	cfg.setForm(nil)
	cfg.clearForm()
	return m, tea.Batch(cmd, tea.ClearScreen)
}

// cardFormConfig wires the add-card form to ADD_CARD
func (m *Model) cardFormConfig() formConfig {
	fs := m.FormState
	return formConfig{
		form:      fs.CardForm,
		setForm:   func(f *huh.Form) { fs.CardForm = f },
		clearForm: fs.ClearCardForm,
		onComplete: func() tea.Cmd {
			if !fs.FormCardConfirm {
				return nil
			}
			cmd := m.dispatch(store.AddCard{
				Name:        fs.FormCardName,
				Description: fs.FormCardDesc,
				ColumnID:    fs.CardColumnID,
			})
			m.selectLastCard()
			return cmd
		},
		confirmPtr: &fs.FormCardConfirm,
	}
}

// renameFormConfig wires the rename form to UPDATE_PROJECT
func (m *Model) renameFormConfig() formConfig {
	fs := m.FormState
	return formConfig{
		form:      fs.RenameForm,
		setForm:   func(f *huh.Form) { fs.RenameForm = f },
		clearForm: fs.ClearRenameForm,
		onComplete: func() tea.Cmd {
			if !fs.HasRenameChanges() {
				return nil
			}
			return m.dispatch(store.UpdateProject{ID: fs.RenameProjectID, Name: fs.FormRenameName})
		},
	}
}

// updateCardForm handles all messages while the add-card form is open
func (m Model) updateCardForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.FormState.ClearCardForm()
			m.UiState.SetMode(state.NormalMode)
			return m, nil
		case m.Config.KeyMappings.SaveForm:
			return m.handleFormSave(m.cardFormConfig())
		}
	}
	return m.handleFormUpdate(msg, m.cardFormConfig())
}

// updateRenameForm handles all messages while the rename form is open
func (m Model) updateRenameForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.FormState.ClearRenameForm()
			m.UiState.SetMode(state.NormalMode)
			return m, nil
		case m.Config.KeyMappings.SaveForm:
			return m.handleFormSave(m.renameFormConfig())
		}
	}
	return m.handleFormUpdate(msg, m.renameFormConfig())
}

// selectLastCard moves the selection onto the card just added to the
// selected column
func (m *Model) selectLastCard() {
	cards := m.currentCards()
	if len(cards) == 0 {
		return
	}
	last := len(cards) - 1
	m.UiState.SetSelectedCard(last)
	if column, ok := m.currentColumn(); ok {
		m.UiState.EnsureCardVisible(column.ID, last, visibleCardsFor(m.UiState))
	}
}
