// Package tui is the interactive board: a Bubble Tea program that renders
// the store's snapshot and turns key presses into dispatched actions.
package tui

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/grid/internal/config"
	"github.com/thenoetrevino/grid/internal/models"
	"github.com/thenoetrevino/grid/internal/store"
	"github.com/thenoetrevino/grid/internal/tui/anim"
	"github.com/thenoetrevino/grid/internal/tui/components"
	"github.com/thenoetrevino/grid/internal/tui/state"
)

// Model represents the application state for the TUI.
// The board itself lives in the store; AppState only holds the latest snapshot.
type Model struct {
	Store  *store.Store
	Config *config.Config

	AppState          *state.AppState
	UiState           *state.UIState
	InputState        *state.InputState
	FormState         *state.FormState
	NotificationState *state.NotificationState
	Anim              *anim.Tracker
}

// InitialModel creates the TUI model over an existing store
func InitialModel(s *store.Store, cfg *config.Config) Model {
	if cfg == nil {
		cfg = config.Default()
	}
	components.InitStyles(cfg.ColorScheme)

	return Model{
		Store:             s,
		Config:            cfg,
		AppState:          state.NewAppState(s.State()),
		UiState:           state.NewUIState(),
		InputState:        state.NewInputState(),
		FormState:         state.NewFormState(),
		NotificationState: state.NewNotificationState(),
		Anim:              anim.NewTracker(cfg.AnimationsEnabled()),
	}
}

// Init starts the mount transition for whatever the store already holds
func (m Model) Init() tea.Cmd {
	return m.Anim.Observe(boardIDs(m.AppState.Board()))
}

// dispatch sends an action to the store and takes the returned snapshot
func (m *Model) dispatch(a store.Action) tea.Cmd {
	slog.Debug("tui dispatch", "kind", a.Kind(), "mode", m.UiState.Mode().String())
	return m.applyBoard(m.Store.Dispatch(a))
}

// applyBoard installs a snapshot and clamps every selection against it
func (m *Model) applyBoard(board store.State) tea.Cmd {
	if m.AppState.SetBoard(board) {
		m.UiState.ResetSelection()
	}
	m.clampSelection()
	return m.Anim.Observe(boardIDs(board))
}

func (m *Model) clampSelection() {
	m.UiState.ClampSelection(len(m.AppState.Columns()))
	m.UiState.ClampCard(len(m.currentCards()))
}

// currentColumn returns the selected column of the active project
func (m Model) currentColumn() (models.Column, bool) {
	return m.AppState.Column(m.UiState.SelectedColumn())
}

// currentCards returns the cards of the selected column
func (m Model) currentCards() []models.Card {
	return m.AppState.Cards(m.UiState.SelectedColumn())
}

// currentCard returns the selected card
func (m Model) currentCard() (models.Card, bool) {
	return m.AppState.Card(m.UiState.SelectedColumn(), m.UiState.SelectedCard())
}

// visibleCardsFor returns how many cards fit in a column at the current height
func visibleCardsFor(ui *state.UIState) int {
	return components.VisibleCards(ui.ContentHeight())
}

// boardIDs lists every id in the snapshot for the mount tracker
func boardIDs(board store.State) []string {
	ids := make([]string, 0, len(board.Projects)+len(board.Columns)+len(board.Cards))
	for _, p := range board.Projects {
		ids = append(ids, p.ID.String())
	}
	for _, c := range board.Columns {
		ids = append(ids, c.ID.String())
	}
	for _, c := range board.Cards {
		ids = append(ids, c.ID.String())
	}
	return ids
}
