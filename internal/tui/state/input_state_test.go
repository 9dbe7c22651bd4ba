package state

import (
	"testing"

	tea "charm.land/bubbletea/v2"
)

func typeInto(s *InputState, text string) {
	for _, r := range text {
		s.Update(tea.KeyPressMsg(tea.Key{Text: string(r), Code: r}))
	}
}

func TestInputState_OpenTypeClear(t *testing.T) {
	s := NewInputState()
	s.Open("Create Project", "name")

	if !s.Focused() {
		t.Fatal("Open() should focus the field")
	}

	typeInto(s, "Website")
	if s.Value() != "Website" {
		t.Errorf("Value() = %q, want Website", s.Value())
	}

	s.Update(tea.KeyPressMsg(tea.Key{Code: tea.KeyBackspace}))
	if s.Value() != "Websit" {
		t.Errorf("Value() after backspace = %q, want Websit", s.Value())
	}

	s.Clear()
	if s.Value() != "" || s.Focused() || s.Prompt != "" {
		t.Errorf("Clear() left value=%q focused=%v prompt=%q", s.Value(), s.Focused(), s.Prompt)
	}
}

// TestInputState_IgnoresKeysWhenClosed ensures keys typed before Open are dropped.
func TestInputState_IgnoresKeysWhenClosed(t *testing.T) {
	s := NewInputState()
	typeInto(s, "abc")

	if s.Value() != "" {
		t.Errorf("Value() = %q, want empty", s.Value())
	}
}

func TestInputState_OpenWithValue(t *testing.T) {
	s := NewInputState()
	s.OpenWithValue("Rename", "Old")
	typeInto(s, "er")

	if s.Value() != "Older" {
		t.Errorf("Value() = %q, want Older", s.Value())
	}
}

func TestInputState_CharLimit(t *testing.T) {
	s := NewInputState()
	s.Open("", "")
	for range maxNameLength + 10 {
		typeInto(s, "x")
	}

	if got := len(s.Value()); got != maxNameLength {
		t.Errorf("len(Value()) = %d, want %d", got, maxNameLength)
	}
}

func TestNotificationState(t *testing.T) {
	s := NewNotificationState()
	if s.HasAny() {
		t.Fatal("new state has notifications")
	}

	s.Add(LevelInfo, "first")
	s.Add(LevelError, "second")

	latest, ok := s.Latest()
	if !ok || latest.Message != "second" || latest.Level != LevelError {
		t.Errorf("Latest() = %+v, %v", latest, ok)
	}
	if len(s.All()) != 2 {
		t.Errorf("All() len = %d, want 2", len(s.All()))
	}

	s.Clear()
	if s.HasAny() {
		t.Error("Clear() left notifications")
	}
}

func TestFormState_Changes(t *testing.T) {
	s := NewFormState()
	s.ResetCardForm("c1")
	if s.HasCardFormChanges() {
		t.Error("fresh card form reports changes")
	}
	s.FormCardDesc = "notes"
	if !s.HasCardFormChanges() {
		t.Error("card form with description should report changes")
	}

	s.ResetRenameForm("p1", "Board")
	if s.HasRenameChanges() {
		t.Error("fresh rename form reports changes")
	}
	s.FormRenameName = "Board 2"
	if !s.HasRenameChanges() {
		t.Error("edited rename form should report changes")
	}
}
