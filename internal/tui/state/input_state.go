package state

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// InputState wraps the single-line text input used for project and
// column names. For the multi-field card form, see FormState.
type InputState struct {
	// Prompt is the heading shown above the field (e.g. "Create Project")
	Prompt string

	input textinput.Model
}

// maxNameLength caps names typed into the input.
const maxNameLength = 100

// NewInputState creates an InputState with an empty, blurred field.
func NewInputState() *InputState {
	ti := textinput.New()
	ti.CharLimit = maxNameLength
	ti.Prompt = "> "
	return &InputState{input: ti}
}

// Open clears the field, sets the prompt and placeholder, and focuses it.
func (s *InputState) Open(prompt, placeholder string) tea.Cmd {
	s.Prompt = prompt
	s.input.Reset()
	s.input.Placeholder = placeholder
	return s.input.Focus()
}

// OpenWithValue opens the field pre-filled, as used for renames.
func (s *InputState) OpenWithValue(prompt, value string) tea.Cmd {
	cmd := s.Open(prompt, "")
	s.input.SetValue(value)
	s.input.CursorEnd()
	return cmd
}

// Update forwards a message to the text field.
func (s *InputState) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return cmd
}

// Value returns the text typed so far. It is not trimmed: an empty
// value is a valid name.
func (s *InputState) Value() string {
	return s.input.Value()
}

// Clear empties and blurs the field.
func (s *InputState) Clear() {
	s.input.Reset()
	s.input.Blur()
	s.Prompt = ""
}

// Focused reports whether the field is accepting keys.
func (s *InputState) Focused() bool {
	return s.input.Focused()
}

// SetWidth sets the visible width of the field.
func (s *InputState) SetWidth(width int) {
	s.input.SetWidth(width)
}

// View renders the field.
func (s *InputState) View() string {
	return s.input.View()
}
