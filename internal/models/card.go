package models

import "github.com/thenoetrevino/grid/internal/types"

// Card represents a single work item in a column
type Card struct {
	ID          types.CardID   `json:"id" yaml:"id"`
	Name        string         `json:"name" yaml:"name"`
	Description string         `json:"description" yaml:"description"`
	ColumnID    types.ColumnID `json:"column_id" yaml:"columnId"`
}
