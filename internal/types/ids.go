package types

// ID type aliases provide semantic meaning to the opaque string identifiers
// handed out by the id generator. They document which entity an id points at
// so a ColumnID can never be passed where a CardID is expected.

// ProjectID identifies a unique project on the board
type ProjectID string

// ColumnID identifies a unique column within a project
type ColumnID string

// CardID identifies a unique card within a column
type CardID string

// String returns the raw identifier
func (id ProjectID) String() string {
	return string(id)
}

func (id ColumnID) String() string {
	return string(id)
}

func (id CardID) String() string {
	return string(id)
}

// IsZero reports whether the id was never assigned
func (id ProjectID) IsZero() bool {
	return id == ""
}

func (id ColumnID) IsZero() bool {
	return id == ""
}

func (id CardID) IsZero() bool {
	return id == ""
}
