package tui

import (
	"reflect"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/grid/internal/config"
	"github.com/thenoetrevino/grid/internal/idgen"
	"github.com/thenoetrevino/grid/internal/store"
)

// setupTestModel creates a model over a fresh store with sequential ids
// and a sized terminal. Seed actions are dispatched before the model is built.
func setupTestModel(t *testing.T, seed ...store.Action) (Model, *store.Store) {
	t.Helper()

	s := store.New(store.WithIDGenerator(idgen.NewSequence("id")))
	for _, a := range seed {
		s.Dispatch(a)
	}

	m := InitialModel(s, config.Default())
	m = sendMsg(m, tea.WindowSizeMsg{Width: 160, Height: 40})
	return m, s
}

// seedBoard is one project (id1) with two columns (id2, id3) and two
// cards in the first column (id4, id5)
func seedBoard() []store.Action {
	return []store.Action{
		store.AddProject{Name: "Alpha"},
		store.AddColumn{Name: "Todo", ProjectID: "id1"},
		store.AddColumn{Name: "Done", ProjectID: "id1"},
		store.AddCard{Name: "one", Description: "first", ColumnID: "id2"},
		store.AddCard{Name: "two", Description: "second", ColumnID: "id2"},
	}
}

// sendMsg updates the model with a message and returns the updated model
func sendMsg(m Model, msg tea.Msg) Model {
	updated, _ := m.Update(msg)
	return updated.(Model)
}

// press sends one key press by name ("enter", "esc", "ctrl+s", "space" or a
// single character)
func press(m Model, name string) Model {
	return sendMsg(m, keyPress(name))
}

// typeText sends each rune of text as its own key press
func typeText(m Model, text string) Model {
	for _, r := range text {
		m = sendMsg(m, tea.KeyPressMsg(tea.Key{Text: string(r), Code: r}))
	}
	return m
}

func keyPress(name string) tea.KeyPressMsg {
	switch name {
	case "enter":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyEnter})
	case "esc":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyEscape})
	case "space":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeySpace, Text: " "})
	case "ctrl+s":
		return tea.KeyPressMsg(tea.Key{Code: 's', Mod: tea.ModCtrl})
	case "ctrl+c":
		return tea.KeyPressMsg(tea.Key{Code: 'c', Mod: tea.ModCtrl})
	}
	r := []rune(name)[0]
	return tea.KeyPressMsg(tea.Key{Text: name, Code: r})
}

// countDispatches subscribes to the store and counts dispatches per kind
func countDispatches(t *testing.T, s *store.Store) map[store.Kind]int {
	t.Helper()
	counts := make(map[store.Kind]int)
	unsubscribe := s.Subscribe(func(_ store.State, a store.Action, _ uint64) {
		counts[a.Kind()]++
	})
	t.Cleanup(unsubscribe)
	return counts
}

// cmdTimeout bounds how long drive waits on a command. Cursor blinks and
// animation frames sleep far longer and are dropped.
const cmdTimeout = 50 * time.Millisecond

var cmdSliceType = reflect.TypeOf([]tea.Cmd(nil))

// drive sends msg and then feeds back every message its commands produce
// promptly, the way the program loop would. Form navigation (next field,
// next group) only happens through those follow-up messages.
func drive(m Model, msg tea.Msg) Model {
	queue := []tea.Msg{msg}
	for steps := 0; len(queue) > 0 && steps < 200; steps++ {
		next := queue[0]
		queue = queue[1:]

		updated, cmd := m.Update(next)
		m = updated.(Model)
		queue = append(queue, runCmd(cmd)...)
	}
	return m
}

// runCmd executes cmd, expanding batches and sequences
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}

	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()

	var msg tea.Msg
	select {
	case msg = <-done:
	case <-time.After(cmdTimeout):
		return nil
	}

	if msg == nil {
		return nil
	}
	if _, quit := msg.(tea.QuitMsg); quit {
		return nil
	}

	// tea.Batch and tea.Sequence both wrap a []tea.Cmd
	v := reflect.ValueOf(msg)
	if v.Kind() == reflect.Slice && v.Type().ConvertibleTo(cmdSliceType) {
		var msgs []tea.Msg
		for _, c := range v.Convert(cmdSliceType).Interface().([]tea.Cmd) {
			msgs = append(msgs, runCmd(c)...)
		}
		return msgs
	}
	return []tea.Msg{msg}
}

// pressDriven presses a key and lets the resulting commands settle
func pressDriven(m Model, name string) Model {
	return drive(m, keyPress(name))
}

// typeDriven types text one key at a time, settling after each key
func typeDriven(m Model, text string) Model {
	for _, r := range text {
		m = drive(m, tea.KeyPressMsg(tea.Key{Text: string(r), Code: r}))
	}
	return m
}
