package script

import (
	"fmt"
	"strings"

	"github.com/thenoetrevino/grid/internal/store"
	"github.com/thenoetrevino/grid/internal/types"
)

const refPrefix = "$"

// Refs maps names bound with `as` to generated ids
type Refs map[string]string

// resolve returns a literal value unchanged and looks up $name references
func (r Refs) resolve(value string) (string, error) {
	if !strings.HasPrefix(value, refPrefix) {
		return value, nil
	}
	name := strings.TrimPrefix(value, refPrefix)
	id, ok := r[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnresolvedRef, value)
	}
	return id, nil
}

// Action converts the step to a store action, resolving references.
// Types the store does not know become store.Unknown.
func (s Step) Action(refs Refs) (store.Action, error) {
	id, err := refs.resolve(s.ID)
	if err != nil {
		return nil, err
	}
	project, err := refs.resolve(s.Project)
	if err != nil {
		return nil, err
	}
	column, err := refs.resolve(s.Column)
	if err != nil {
		return nil, err
	}

	switch store.Kind(s.Type) {
	case store.KindAddProject:
		return store.AddProject{Name: s.Name}, nil
	case store.KindRemoveProject:
		return store.RemoveProject{ID: types.ProjectID(id)}, nil
	case store.KindUpdateProject:
		return store.UpdateProject{ID: types.ProjectID(id), Name: s.Name}, nil
	case store.KindAddColumn:
		return store.AddColumn{Name: s.Name, ProjectID: types.ProjectID(project)}, nil
	case store.KindRemoveColumn:
		return store.RemoveColumn{ID: types.ColumnID(id)}, nil
	case store.KindAddCard:
		return store.AddCard{Name: s.Name, Description: s.Description, ColumnID: types.ColumnID(column)}, nil
	case store.KindRemoveCard:
		return store.RemoveCard{ID: types.CardID(id)}, nil
	default:
		return store.Unknown{Type: s.Type}, nil
	}
}

// FromAction renders an action back into a step for replay traces
func FromAction(a store.Action) Step {
	switch a := a.(type) {
	case store.AddProject:
		return Step{Type: string(a.Kind()), Name: a.Name}
	case store.RemoveProject:
		return Step{Type: string(a.Kind()), ID: a.ID.String()}
	case store.UpdateProject:
		return Step{Type: string(a.Kind()), ID: a.ID.String(), Name: a.Name}
	case store.AddColumn:
		return Step{Type: string(a.Kind()), Name: a.Name, Project: a.ProjectID.String()}
	case store.RemoveColumn:
		return Step{Type: string(a.Kind()), ID: a.ID.String()}
	case store.AddCard:
		return Step{Type: string(a.Kind()), Name: a.Name, Description: a.Description, Column: a.ColumnID.String()}
	case store.RemoveCard:
		return Step{Type: string(a.Kind()), ID: a.ID.String()}
	case nil:
		return Step{}
	default:
		return Step{Type: string(a.Kind())}
	}
}

// createdID returns the id of the record an ADD_* action appended.
// Adds always append, so it is the last element of the matching list.
func createdID(kind store.Kind, s store.State) (string, bool) {
	switch kind {
	case store.KindAddProject:
		if n := len(s.Projects); n > 0 {
			return s.Projects[n-1].ID.String(), true
		}
	case store.KindAddColumn:
		if n := len(s.Columns); n > 0 {
			return s.Columns[n-1].ID.String(), true
		}
	case store.KindAddCard:
		if n := len(s.Cards); n > 0 {
			return s.Cards[n-1].ID.String(), true
		}
	}
	return "", false
}
