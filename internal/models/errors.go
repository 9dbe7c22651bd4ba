package models

import "errors"

// Navigation errors returned when the selection cannot move any further
var (
	// ErrAlreadyFirstColumn indicates the selection is already on the leftmost column
	ErrAlreadyFirstColumn = errors.New("already at the first column")

	// ErrAlreadyLastColumn indicates the selection is already on the rightmost column
	ErrAlreadyLastColumn = errors.New("already at the last column")

	// ErrAlreadyFirstCard indicates the selection is already on the top card
	ErrAlreadyFirstCard = errors.New("already at the first card")

	// ErrAlreadyLastCard indicates the selection is already on the bottom card
	ErrAlreadyLastCard = errors.New("already at the last card")

	// ErrAlreadyFirstProject indicates the first project tab is already active
	ErrAlreadyFirstProject = errors.New("already at the first project")

	// ErrAlreadyLastProject indicates the last project tab is already active
	ErrAlreadyLastProject = errors.New("already at the last project")
)
