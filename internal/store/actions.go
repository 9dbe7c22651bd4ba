package store

import "github.com/thenoetrevino/grid/internal/types"

// Kind names an action variant. The values match the action type strings
// used by replay scripts.
type Kind string

const (
	KindAddProject    Kind = "ADD_PROJECT"
	KindRemoveProject Kind = "REMOVE_PROJECT"
	KindUpdateProject Kind = "UPDATE_PROJECT"
	KindAddColumn     Kind = "ADD_COLUMN"
	KindRemoveColumn  Kind = "REMOVE_COLUMN"
	KindAddCard       Kind = "ADD_CARD"
	KindRemoveCard    Kind = "REMOVE_CARD"
)

// Kinds lists every action kind the root reducer routes
func Kinds() []Kind {
	return []Kind{
		KindAddProject,
		KindRemoveProject,
		KindUpdateProject,
		KindAddColumn,
		KindRemoveColumn,
		KindAddCard,
		KindRemoveCard,
	}
}

// Action is the closed set of state transitions a board accepts.
// Each variant carries only the fields it needs.
type Action interface {
	Kind() Kind
	isAction()
}

// AddProject appends a project with a generated id. Name may be empty.
type AddProject struct {
	Name string
}

// RemoveProject removes a project and filters the column list.
type RemoveProject struct {
	ID types.ProjectID
}

// UpdateProject renames a project in place.
type UpdateProject struct {
	ID   types.ProjectID
	Name string
}

// AddColumn appends a column to a project. The project is not checked.
type AddColumn struct {
	Name      string
	ProjectID types.ProjectID
}

// RemoveColumn removes a single column. Its cards are left in place.
type RemoveColumn struct {
	ID types.ColumnID
}

// AddCard appends a card to a column.
type AddCard struct {
	Name        string
	Description string
	ColumnID    types.ColumnID
}

// RemoveCard removes a single card.
type RemoveCard struct {
	ID types.CardID
}

// Unknown carries an action type no reducer recognizes. Dispatching it
// leaves state unchanged.
type Unknown struct {
	Type string
}

func (AddProject) Kind() Kind    { return KindAddProject }
func (RemoveProject) Kind() Kind { return KindRemoveProject }
func (UpdateProject) Kind() Kind { return KindUpdateProject }
func (AddColumn) Kind() Kind     { return KindAddColumn }
func (RemoveColumn) Kind() Kind  { return KindRemoveColumn }
func (AddCard) Kind() Kind       { return KindAddCard }
func (RemoveCard) Kind() Kind    { return KindRemoveCard }
func (u Unknown) Kind() Kind     { return Kind(u.Type) }

func (AddProject) isAction()    {}
func (RemoveProject) isAction() {}
func (UpdateProject) isAction() {}
func (AddColumn) isAction()     {}
func (RemoveColumn) isAction()  {}
func (AddCard) isAction()       {}
func (RemoveCard) isAction()    {}
func (Unknown) isAction()       {}
