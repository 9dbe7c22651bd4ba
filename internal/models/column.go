package models

import "github.com/thenoetrevino/grid/internal/types"

// Column represents a kanban lane (e.g., "Todo", "In Progress", "Done").
// Columns reference their project by id only; the relationship is a foreign
// key into the flat project list, not a nested structure.
type Column struct {
	ID        types.ColumnID  `json:"id" yaml:"id"`                // Unique identifier for the column
	Name      string          `json:"name" yaml:"name"`            // Display name of the column
	ProjectID types.ProjectID `json:"project_id" yaml:"projectId"` // Owning project
}
