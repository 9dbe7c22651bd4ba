package launcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/grid/internal/script"
)

func TestNewStore_Empty(t *testing.T) {
	s, err := NewStore(context.Background(), Options{})
	require.NoError(t, err)

	board := s.State()
	assert.Empty(t, board.Projects)
	assert.Equal(t, uint64(0), s.Version())
}

func TestNewStore_ReplaysScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`- type: ADD_PROJECT
  name: Alpha
  as: alpha
- type: ADD_COLUMN
  name: Todo
  project: $alpha
`), 0o644))

	s, err := NewStore(context.Background(), Options{Script: path})
	require.NoError(t, err)

	board := s.State()
	require.Len(t, board.Projects, 1)
	require.Len(t, board.Columns, 1)
	assert.Equal(t, board.Projects[0].ID, board.Columns[0].ProjectID)
	assert.Equal(t, uint64(2), s.Version())
}

func TestNewStore_BadScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("steps: []\n"), 0o644))

	_, err := NewStore(context.Background(), Options{Script: path})
	require.Error(t, err)
	assert.ErrorIs(t, err, script.ErrEmptyScript)
}
