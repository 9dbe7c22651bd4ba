package state

import (
	"github.com/thenoetrevino/grid/internal/models"
	"github.com/thenoetrevino/grid/internal/store"
)

// AppState holds the latest board snapshot from the store and which
// project tab is active. Columns and cards for display are filtered from
// the flat lists on every call.
type AppState struct {
	board           store.State
	selectedProject int
}

// NewAppState creates an AppState over the given snapshot.
func NewAppState(board store.State) *AppState {
	return &AppState{board: board}
}

// Board returns the held snapshot.
func (s *AppState) Board() store.State {
	return s.board
}

// SetBoard replaces the snapshot and keeps the project selection valid.
// Returns true when the selected project changed as a result.
func (s *AppState) SetBoard(board store.State) bool {
	prev, hadPrev := s.CurrentProject()
	s.board = board

	if s.selectedProject >= len(board.Projects) {
		s.selectedProject = max(len(board.Projects)-1, 0)
	}

	cur, hasCur := s.CurrentProject()
	return hadPrev != hasCur || prev.ID != cur.ID
}

// Projects returns every project in insertion order.
func (s *AppState) Projects() []models.Project {
	return s.board.Projects
}

// SelectedProject returns the index of the active project tab.
func (s *AppState) SelectedProject() int {
	return s.selectedProject
}

// SetSelectedProject changes the active project tab. Out of range indexes are ignored.
func (s *AppState) SetSelectedProject(index int) bool {
	if index < 0 || index >= len(s.board.Projects) {
		return false
	}
	s.selectedProject = index
	return true
}

// SelectLastProject activates the most recently added project.
func (s *AppState) SelectLastProject() {
	s.selectedProject = max(len(s.board.Projects)-1, 0)
}

// CurrentProject returns the active project, if any.
func (s *AppState) CurrentProject() (models.Project, bool) {
	if s.selectedProject < 0 || s.selectedProject >= len(s.board.Projects) {
		return models.Project{}, false
	}
	return s.board.Projects[s.selectedProject], true
}

// Columns returns the active project's columns.
func (s *AppState) Columns() []models.Column {
	project, ok := s.CurrentProject()
	if !ok {
		return []models.Column{}
	}
	return s.board.ColumnsInProject(project.ID)
}

// Column returns the column at index within the active project.
func (s *AppState) Column(index int) (models.Column, bool) {
	columns := s.Columns()
	if index < 0 || index >= len(columns) {
		return models.Column{}, false
	}
	return columns[index], true
}

// Cards returns the cards of the column at index within the active project.
func (s *AppState) Cards(columnIndex int) []models.Card {
	column, ok := s.Column(columnIndex)
	if !ok {
		return []models.Card{}
	}
	return s.board.CardsInColumn(column.ID)
}

// Card returns a single card by column and card index.
func (s *AppState) Card(columnIndex, cardIndex int) (models.Card, bool) {
	cards := s.Cards(columnIndex)
	if cardIndex < 0 || cardIndex >= len(cards) {
		return models.Card{}, false
	}
	return cards[cardIndex], true
}

// TotalCards counts every card on the board, orphans included.
func (s *AppState) TotalCards() int {
	return len(s.board.Cards)
}
