package store

import (
	"slices"

	"github.com/thenoetrevino/grid/internal/models"
	"github.com/thenoetrevino/grid/internal/types"
)

// State is the aggregate snapshot of the board.
// The lists are flat; relationships are carried by foreign keys.
// Reducers never modify a State's slices in place, so a State can be shared
// freely as long as callers treat it as read-only.
type State struct {
	Projects []models.Project `json:"projects" yaml:"projects"`
	Columns  []models.Column  `json:"columns" yaml:"columns"`
	Cards    []models.Card    `json:"cards" yaml:"cards"`
}

// NewState returns the initial empty state
func NewState() State {
	return State{
		Projects: []models.Project{},
		Columns:  []models.Column{},
		Cards:    []models.Card{},
	}
}

// Clone returns a deep copy whose slices do not alias the receiver's
func (s State) Clone() State {
	return State{
		Projects: cloneOrEmpty(s.Projects),
		Columns:  cloneOrEmpty(s.Columns),
		Cards:    cloneOrEmpty(s.Cards),
	}
}

func cloneOrEmpty[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	return slices.Clone(in)
}

// Project finds a project by id
func (s State) Project(id types.ProjectID) (models.Project, bool) {
	for _, p := range s.Projects {
		if p.ID == id {
			return p, true
		}
	}
	return models.Project{}, false
}

// Column finds a column by id
func (s State) Column(id types.ColumnID) (models.Column, bool) {
	for _, c := range s.Columns {
		if c.ID == id {
			return c, true
		}
	}
	return models.Column{}, false
}

// Card finds a card by id
func (s State) Card(id types.CardID) (models.Card, bool) {
	for _, c := range s.Cards {
		if c.ID == id {
			return c, true
		}
	}
	return models.Card{}, false
}

// ColumnsInProject returns the project's columns in insertion order.
// This is a linear scan over the full column list on every call.
func (s State) ColumnsInProject(projectID types.ProjectID) []models.Column {
	columns := []models.Column{}
	for _, c := range s.Columns {
		if c.ProjectID == projectID {
			columns = append(columns, c)
		}
	}
	return columns
}

// CardsInColumn returns the column's cards in insertion order.
// This is a linear scan over the full card list on every call.
func (s State) CardsInColumn(columnID types.ColumnID) []models.Card {
	cards := []models.Card{}
	for _, c := range s.Cards {
		if c.ColumnID == columnID {
			cards = append(cards, c)
		}
	}
	return cards
}

// OrphanedCards returns cards whose column no longer exists
func (s State) OrphanedCards() []models.Card {
	orphans := []models.Card{}
	for _, card := range s.Cards {
		if _, ok := s.Column(card.ColumnID); !ok {
			orphans = append(orphans, card)
		}
	}
	return orphans
}

// Equal reports whether two snapshots hold the same records in the same order
func (s State) Equal(other State) bool {
	return slices.Equal(s.Projects, other.Projects) &&
		slices.Equal(s.Columns, other.Columns) &&
		slices.Equal(s.Cards, other.Cards)
}
