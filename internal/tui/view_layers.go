package tui

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/grid/internal/tui/components"
	"github.com/thenoetrevino/grid/internal/tui/layers"
	"github.com/thenoetrevino/grid/internal/tui/state"
)

// renderModalLayer returns the overlay for the current mode, nil in normal mode
func (m Model) renderModalLayer() *lipgloss.Layer {
	var content string

	switch m.UiState.Mode() {
	case state.CreateProjectMode, state.AddColumnMode:
		content = m.renderInputBox()
	case state.CardFormMode:
		content = m.renderCardFormBox()
	case state.RenameProjectMode:
		content = m.renderRenameFormBox()
	case state.DeleteProjectConfirmMode, state.DeleteColumnConfirmMode, state.DeleteCardConfirmMode:
		content = m.renderConfirmBox()
	case state.CardDetailMode:
		content = m.renderCardDetail()
	case state.HelpMode:
		content = components.RenderHelp(m.Config.KeyMappings)
	}

	return layers.CreateCenteredLayer(content, m.UiState.Width(), m.UiState.Height())
}

func (m Model) renderCardFormBox() string {
	if m.FormState.CardForm == nil {
		return ""
	}
	title := "New Card"
	if column, ok := m.AppState.Board().Column(m.FormState.CardColumnID); ok {
		title = "New Card in " + column.Name
	}
	help := components.EmptyStyle.Render(m.Config.KeyMappings.SaveForm + " to save · esc to cancel")

	return components.CardFormBoxStyle.
		Width(max(m.UiState.Width()/2, 50)).
		Render(lipgloss.JoinVertical(lipgloss.Left,
			components.TitleStyle.Render(title),
			"",
			m.FormState.CardForm.View(),
			"",
			help,
		))
}

func (m Model) renderRenameFormBox() string {
	if m.FormState.RenameForm == nil {
		return ""
	}
	return components.EditInputBoxStyle.
		Width(50).
		Render(m.FormState.RenameForm.View())
}

// renderConfirmBox renders the y/n prompt for the pending removal
func (m Model) renderConfirmBox() string {
	var prompt string

	switch m.UiState.Mode() {
	case state.DeleteProjectConfirmMode:
		project, _ := m.AppState.CurrentProject()
		prompt = fmt.Sprintf("Delete project %q?", project.Name)
	case state.DeleteColumnConfirmMode:
		column, _ := m.currentColumn()
		prompt = fmt.Sprintf("Delete column %q?\nIts cards are kept.", column.Name)
	case state.DeleteCardConfirmMode:
		card, _ := m.currentCard()
		prompt = fmt.Sprintf("Delete card %q?", card.Name)
	}

	return components.DeleteConfirmBoxStyle.
		Width(50).
		Render(prompt + "\n\n" + components.EmptyStyle.Render("[y]es  [n]o"))
}

func (m Model) renderCardDetail() string {
	card, ok := m.currentCard()
	if !ok {
		return ""
	}
	column, _ := m.currentColumn()

	return components.RenderCardDetail(components.CardDetailProps{
		Card:       card,
		ColumnName: column.Name,
		Width:      min(max(m.UiState.Width()/2, 40), 80),
	})
}
