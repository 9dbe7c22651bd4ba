package script

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/grid/internal/idgen"
	"github.com/thenoetrevino/grid/internal/store"
	"github.com/thenoetrevino/grid/internal/types"
)

func newRunner() (*Runner, *store.Store) {
	s := store.New(store.WithIDGenerator(idgen.NewSequence("id")))
	return NewRunner(s, nil), s
}

func TestParse_Mapping(t *testing.T) {
	sc, err := Parse(strings.NewReader(`name: board
steps:
  - type: ADD_PROJECT
    name: Website
    as: web
  - type: ADD_COLUMN
    name: Todo
    project: $web
`))
	require.NoError(t, err)

	assert.Equal(t, "board", sc.Name)
	require.Len(t, sc.Steps, 2)
	assert.Equal(t, Step{Type: "ADD_PROJECT", Name: "Website", As: "web", Line: 3}, sc.Steps[0])
	assert.Equal(t, "$web", sc.Steps[1].Project)
	assert.Equal(t, 6, sc.Steps[1].Line)
}

func TestParse_BareList(t *testing.T) {
	sc, err := Parse(strings.NewReader("- type: ADD_PROJECT\n  name: P\n"))
	require.NoError(t, err)

	require.Len(t, sc.Steps, 1)
	assert.Equal(t, "P", sc.Steps[0].Name)
}

func TestParse_JSON(t *testing.T) {
	sc, err := Parse(strings.NewReader(`{"steps": [{"type": "ADD_PROJECT", "name": "J"}]}`))
	require.NoError(t, err)

	require.Len(t, sc.Steps, 1)
	assert.Equal(t, "J", sc.Steps[0].Name)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"empty document", "", ErrEmptyScript},
		{"whitespace only", "  \n\n", ErrEmptyScript},
		{"no steps", "name: nothing\nsteps: []\n", ErrEmptyScript},
		{"missing type", "- name: P\n", ErrMissingType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse(strings.NewReader("steps: [type: ADD_PROJECT"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDecode)
	assert.Contains(t, err.Error(), "decode script")

	_, err = Parse(strings.NewReader("just a string"))
	assert.ErrorIs(t, err, ErrDecode)
}

func TestStepAction(t *testing.T) {
	refs := Refs{"p": "p1", "c": "c1", "k": "k1"}

	tests := []struct {
		name string
		step Step
		want store.Action
	}{
		{"add project", Step{Type: "ADD_PROJECT", Name: "Website"}, store.AddProject{Name: "Website"}},
		{"remove project by ref", Step{Type: "REMOVE_PROJECT", ID: "$p"}, store.RemoveProject{ID: "p1"}},
		{"update project literal", Step{Type: "UPDATE_PROJECT", ID: "raw", Name: "N"}, store.UpdateProject{ID: "raw", Name: "N"}},
		{"add column", Step{Type: "ADD_COLUMN", Name: "Todo", Project: "$p"}, store.AddColumn{Name: "Todo", ProjectID: "p1"}},
		{"remove column", Step{Type: "REMOVE_COLUMN", ID: "$c"}, store.RemoveColumn{ID: "c1"}},
		{"add card", Step{Type: "ADD_CARD", Name: "A", Description: "d", Column: "$c"}, store.AddCard{Name: "A", Description: "d", ColumnID: "c1"}},
		{"remove card", Step{Type: "REMOVE_CARD", ID: "$k"}, store.RemoveCard{ID: "k1"}},
		{"unknown", Step{Type: "SELECT_CARD", ID: "$k"}, store.Unknown{Type: "SELECT_CARD"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.step.Action(refs)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStepAction_UnresolvedRef(t *testing.T) {
	_, err := Step{Type: "ADD_COLUMN", Project: "$missing"}.Action(Refs{})
	assert.ErrorIs(t, err, ErrUnresolvedRef)
	assert.Contains(t, err.Error(), "$missing")
}

func TestFromAction(t *testing.T) {
	actions := []store.Action{
		store.AddProject{Name: "P"},
		store.RemoveProject{ID: "p1"},
		store.UpdateProject{ID: "p1", Name: "Q"},
		store.AddColumn{Name: "Todo", ProjectID: "p1"},
		store.RemoveColumn{ID: "c1"},
		store.AddCard{Name: "A", Description: "d", ColumnID: "c1"},
		store.RemoveCard{ID: "k1"},
		store.Unknown{Type: "NOPE"},
	}

	for _, a := range actions {
		back, err := FromAction(a).Action(Refs{})
		require.NoError(t, err)
		assert.Equal(t, a, back)
	}
}

func TestRun_Refs(t *testing.T) {
	r, _ := newRunner()

	res, err := r.Run(context.Background(), &Script{Steps: []Step{
		{Type: "ADD_PROJECT", Name: "P", As: "p"},
		{Type: "ADD_COLUMN", Name: "Todo", Project: "$p", As: "todo"},
		{Type: "ADD_CARD", Name: "Write", Description: "docs", Column: "$todo", As: "card"},
	}})
	require.NoError(t, err)

	assert.Equal(t, 3, res.Steps)
	assert.Equal(t, Refs{"p": "id1", "todo": "id2", "card": "id3"}, res.Refs)
	require.Len(t, res.State.Cards, 1)
	assert.Equal(t, types.ColumnID("id2"), res.State.Cards[0].ColumnID)
	assert.Equal(t, types.ProjectID("id1"), res.State.Columns[0].ProjectID)
}

func TestRun_UnknownIsIgnored(t *testing.T) {
	r, s := newRunner()

	res, err := r.Run(context.Background(), &Script{Steps: []Step{
		{Type: "ADD_PROJECT", Name: "P"},
		{Type: "MOVE_CARD"},
		{Type: "MOVE_CARD"},
	}})
	require.NoError(t, err)

	assert.Equal(t, []string{"MOVE_CARD", "MOVE_CARD"}, res.Ignored)
	assert.Len(t, res.State.Projects, 1)
	assert.Equal(t, uint64(3), s.Version())
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name      string
		steps     []Step
		wantErr   error
		wantSteps int
	}{
		{
			name:      "unresolved ref stops the run",
			steps:     []Step{{Type: "ADD_PROJECT", Name: "P"}, {Type: "REMOVE_PROJECT", ID: "$nope"}, {Type: "ADD_PROJECT"}},
			wantErr:   ErrUnresolvedRef,
			wantSteps: 1,
		},
		{
			name:    "binding a removal",
			steps:   []Step{{Type: "REMOVE_CARD", ID: "x", As: "gone"}},
			wantErr: ErrInvalidBinding,
		},
		{
			name:      "binding a name twice",
			steps:     []Step{{Type: "ADD_PROJECT", As: "p"}, {Type: "ADD_PROJECT", As: "p"}},
			wantErr:   ErrDuplicateBinding,
			wantSteps: 1,
		},
		{
			name:    "empty",
			steps:   nil,
			wantErr: ErrEmptyScript,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := newRunner()
			res, err := r.Run(context.Background(), &Script{Steps: tt.steps})
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.wantSteps, res.Steps)
		})
	}
}

func TestRun_Cancelled(t *testing.T) {
	r, s := newRunner()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Run(ctx, &Script{Steps: []Step{{Type: "ADD_PROJECT"}}})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, uint64(0), s.Version())
}

// Replaying the reference scenarios gives the same board as dispatching
// the actions directly.
func TestRun_MatchesDirectDispatch(t *testing.T) {
	r, _ := newRunner()
	res, err := r.Run(context.Background(), &Script{Steps: []Step{
		{Type: "ADD_PROJECT", Name: "P1", As: "p1"},
		{Type: "ADD_PROJECT", Name: "P2", As: "p2"},
		{Type: "ADD_COLUMN", Name: "c1", Project: "$p1", As: "c1"},
		{Type: "ADD_COLUMN", Name: "c2", Project: "$p2"},
		{Type: "ADD_CARD", Name: "A", Description: "", Column: "$c1", As: "a"},
		{Type: "REMOVE_CARD", ID: "not-a-card"},
		{Type: "REMOVE_COLUMN", ID: "$c1"},
		{Type: "REMOVE_PROJECT", ID: "$p1"},
	}})
	require.NoError(t, err)

	direct := store.New(store.WithIDGenerator(idgen.NewSequence("id")))
	direct.Dispatch(store.AddProject{Name: "P1"})
	direct.Dispatch(store.AddProject{Name: "P2"})
	direct.Dispatch(store.AddColumn{Name: "c1", ProjectID: "id1"})
	direct.Dispatch(store.AddColumn{Name: "c2", ProjectID: "id2"})
	direct.Dispatch(store.AddCard{Name: "A", ColumnID: "id3"})
	direct.Dispatch(store.RemoveCard{ID: "not-a-card"})
	direct.Dispatch(store.RemoveColumn{ID: "id3"})
	direct.Dispatch(store.RemoveProject{ID: "id1"})

	assert.True(t, direct.State().Equal(res.State))
	// REMOVE_PROJECT keeps only columns of the removed project, and id3 was
	// already removed, so none remain; the card stays orphaned.
	assert.Empty(t, res.State.Columns)
	assert.Len(t, res.State.Cards, 1)
	assert.Len(t, res.State.Projects, 1)
}

func TestRunFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`- {type: ADD_PROJECT, name: P, as: p}
- {type: ADD_COLUMN, name: Todo, project: $p}
`), 0o644))

	r, _ := newRunner()
	res, err := r.RunFile(context.Background(), path)
	require.NoError(t, err)
	assert.Len(t, res.State.Columns, 1)

	_, err = r.RunFile(context.Background(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
