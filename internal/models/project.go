package models

import "github.com/thenoetrevino/grid/internal/types"

// Project represents a container for kanban columns.
// Projects are the top-level organizational unit on the board.
// Name may be empty: creation never validates it.
type Project struct {
	ID   types.ProjectID `json:"id" yaml:"id"`
	Name string          `json:"name" yaml:"name"`
}
