package state

import (
	"strings"

	"charm.land/huh/v2"
	"github.com/thenoetrevino/grid/internal/types"
)

// FormState manages the huh forms and the values they write into.
// Forms bind to these fields by pointer, so FormState must not be copied
// while a form is open.
type FormState struct {
	// Card form (add card to the selected column)
	CardForm        *huh.Form
	CardColumnID    types.ColumnID
	FormCardName    string
	FormCardDesc    string
	FormCardConfirm bool

	// Project rename form
	RenameForm      *huh.Form
	RenameProjectID types.ProjectID
	FormRenameName  string
	initialName     string
}

// NewFormState creates a FormState with no open forms.
func NewFormState() *FormState {
	return &FormState{FormCardConfirm: true}
}

// ResetCardForm clears the card fields so the next form starts empty.
func (s *FormState) ResetCardForm(columnID types.ColumnID) {
	s.CardForm = nil
	s.CardColumnID = columnID
	s.FormCardName = ""
	s.FormCardDesc = ""
	s.FormCardConfirm = true
}

// ClearCardForm drops the card form and its values.
func (s *FormState) ClearCardForm() {
	s.ResetCardForm("")
}

// HasCardFormChanges reports whether anything was typed into the card form.
func (s *FormState) HasCardFormChanges() bool {
	return strings.TrimSpace(s.FormCardName) != "" || strings.TrimSpace(s.FormCardDesc) != ""
}

// ResetRenameForm prepares the rename fields for a project.
func (s *FormState) ResetRenameForm(id types.ProjectID, name string) {
	s.RenameForm = nil
	s.RenameProjectID = id
	s.FormRenameName = name
	s.initialName = name
}

// ClearRenameForm drops the rename form and its values.
func (s *FormState) ClearRenameForm() {
	s.ResetRenameForm("", "")
}

// HasRenameChanges reports whether the name differs from the original.
func (s *FormState) HasRenameChanges() bool {
	return s.FormRenameName != s.initialName
}
