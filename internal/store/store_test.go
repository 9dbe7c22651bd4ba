package store

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/grid/internal/idgen"
	"github.com/thenoetrevino/grid/internal/types"
)

func TestStore_InitialState(t *testing.T) {
	s := New()

	st := s.State()
	assert.Empty(t, st.Projects)
	assert.Empty(t, st.Columns)
	assert.Empty(t, st.Cards)
	assert.NotNil(t, st.Projects, "initial lists should be empty, not nil")
	assert.Equal(t, uint64(0), s.Version())
}

func TestStore_DispatchReplacesState(t *testing.T) {
	s := New(WithIDGenerator(idgen.NewSequence("id")))

	next := s.Dispatch(AddProject{Name: "Website"})

	require.Len(t, next.Projects, 1)
	assert.Equal(t, "Website", next.Projects[0].Name)
	assert.Equal(t, types.ProjectID("id1"), next.Projects[0].ID)
	assert.Equal(t, next, s.State())
	assert.Equal(t, uint64(1), s.Version())
}

func TestStore_SnapshotsAreIsolated(t *testing.T) {
	s := New(WithIDGenerator(idgen.NewSequence("id")))
	s.Dispatch(AddProject{Name: "A"})

	snapshot := s.State()
	snapshot.Projects[0].Name = "tampered"
	s.Dispatch(AddProject{Name: "B"})

	assert.Len(t, snapshot.Projects, 1, "old snapshot must not see later dispatches")
	assert.Equal(t, "A", s.State().Projects[0].Name, "mutating a snapshot must not leak into the store")
}

func TestStore_WithInitialState(t *testing.T) {
	seed := NewState()
	seed = NewReducer(idgen.NewSequence("seed")).Reduce(seed, AddProject{Name: "Seeded"})

	s := New(WithInitialState(seed))

	require.Len(t, s.State().Projects, 1)
	assert.Equal(t, "Seeded", s.State().Projects[0].Name)
}

func TestStore_SubscribeNotifiesEveryDispatch(t *testing.T) {
	s := New(WithIDGenerator(idgen.NewSequence("id")))

	var kinds []Kind
	var sizes []int
	var versions []uint64
	unsubscribe := s.Subscribe(func(st State, a Action, version uint64) {
		kinds = append(kinds, a.Kind())
		sizes = append(sizes, len(st.Projects))
		versions = append(versions, version)
	})

	s.Dispatch(AddProject{Name: "A"})
	s.Dispatch(Unknown{Type: "NOPE"})
	s.Dispatch(AddProject{Name: "B"})

	assert.Equal(t, []Kind{KindAddProject, "NOPE", KindAddProject}, kinds)
	assert.Equal(t, []int{1, 1, 2}, sizes, "listeners see the post-dispatch snapshot")
	assert.Equal(t, []uint64{1, 2, 3}, versions)

	unsubscribe()
	unsubscribe() // second call is a no-op
	s.Dispatch(AddProject{Name: "C"})
	assert.Len(t, kinds, 3, "unsubscribed listener must not be called")
}

func TestStore_ListenersRunInSubscriptionOrder(t *testing.T) {
	s := New()

	var order []string
	s.Subscribe(func(State, Action, uint64) { order = append(order, "first") })
	s.Subscribe(func(State, Action, uint64) { order = append(order, "second") })

	s.Dispatch(AddProject{})

	assert.Equal(t, []string{"first", "second"}, order)
}

func TestStore_ListenerMayDispatch(t *testing.T) {
	s := New()

	fired := false
	s.Subscribe(func(st State, a Action, _ uint64) {
		if a.Kind() == KindAddProject && !fired {
			fired = true
			s.Dispatch(AddColumn{Name: "Todo", ProjectID: st.Projects[0].ID})
		}
	})

	// Registered after the dispatching listener, so it hears the nested
	// ADD_COLUMN before the ADD_PROJECT that triggered it
	seen := map[Kind]uint64{}
	var order []Kind
	s.Subscribe(func(_ State, a Action, version uint64) {
		seen[a.Kind()] = version
		order = append(order, a.Kind())
	})

	s.Dispatch(AddProject{Name: "P"})

	assert.Len(t, s.State().Columns, 1)
	assert.Equal(t, []Kind{KindAddColumn, KindAddProject}, order)
	assert.Equal(t, uint64(1), seen[KindAddProject], "each listener call carries its own dispatch's version")
	assert.Equal(t, uint64(2), seen[KindAddColumn])
	assert.Equal(t, uint64(2), s.Version())
}

func TestStore_UnknownTwiceEqualsZero(t *testing.T) {
	s := New()
	s.Dispatch(AddProject{Name: "P"})
	before := s.State()

	s.Dispatch(Unknown{Type: "SELECT"})
	s.Dispatch(Unknown{Type: "SELECT"})

	assert.True(t, before.Equal(s.State()))
}

func TestStore_ConcurrentDispatchIsSerialized(t *testing.T) {
	s := New()
	const workers = 16
	const perWorker = 50

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				s.Dispatch(AddProject{Name: "p"})
			}
		}()
	}
	wg.Wait()

	assert.Len(t, s.State().Projects, workers*perWorker)
	assert.Equal(t, uint64(workers*perWorker), s.Version())
}

// TestStore_RandomSequences checks the conservation and uniqueness properties
// over random action sequences: every record present was introduced by an
// ADD and not removed since, and ids never repeat.
func TestStore_RandomSequences(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for run := 0; run < 50; run++ {
		s := New()
		added := map[string]bool{}
		removed := map[string]bool{}

		for step := 0; step < 60; step++ {
			st := s.State()
			var action Action

			switch rng.Intn(8) {
			case 0:
				action = AddProject{Name: "p"}
			case 1:
				if len(st.Projects) > 0 {
					action = RemoveProject{ID: st.Projects[rng.Intn(len(st.Projects))].ID}
				}
			case 2:
				if len(st.Projects) > 0 {
					action = UpdateProject{ID: st.Projects[rng.Intn(len(st.Projects))].ID, Name: "renamed"}
				}
			case 3:
				if len(st.Projects) > 0 {
					action = AddColumn{Name: "c", ProjectID: st.Projects[rng.Intn(len(st.Projects))].ID}
				}
			case 4:
				if len(st.Columns) > 0 {
					action = RemoveColumn{ID: st.Columns[rng.Intn(len(st.Columns))].ID}
				}
			case 5:
				if len(st.Columns) > 0 {
					action = AddCard{Name: "k", ColumnID: st.Columns[rng.Intn(len(st.Columns))].ID}
				}
			case 6:
				if len(st.Cards) > 0 {
					action = RemoveCard{ID: st.Cards[rng.Intn(len(st.Cards))].ID}
				}
			default:
				action = Unknown{Type: "NOISE"}
			}
			if action == nil {
				continue
			}

			next := s.Dispatch(action)
			trackChanges(t, action, st, next, added, removed)
		}

		final := s.State()
		seen := map[string]bool{}
		for _, p := range final.Projects {
			checkRecord(t, string(p.ID), added, removed, seen)
		}
		for _, c := range final.Columns {
			checkRecord(t, string(c.ID), added, removed, seen)
		}
		for _, c := range final.Cards {
			checkRecord(t, string(c.ID), added, removed, seen)
		}
	}
}

// trackChanges records ids created by ADD_* actions and ids that
// disappeared. Any other action creating a record fails the test.
func trackChanges(t *testing.T, action Action, prev, next State, added, removed map[string]bool) {
	t.Helper()
	prevIDs := ids(prev)
	nextIDs := ids(next)

	var created []string
	for id := range nextIDs {
		if !prevIDs[id] {
			created = append(created, id)
		}
	}

	switch action.(type) {
	case AddProject, AddColumn, AddCard:
		assert.Len(t, created, 1, "%s should create exactly one record", action.Kind())
		for _, id := range created {
			added[id] = true
		}
	default:
		assert.Empty(t, created, "%s must not create records", action.Kind())
	}

	for id := range prevIDs {
		if !nextIDs[id] {
			removed[id] = true
		}
	}
}

func ids(s State) map[string]bool {
	out := map[string]bool{}
	for _, p := range s.Projects {
		out[string(p.ID)] = true
	}
	for _, c := range s.Columns {
		out[string(c.ID)] = true
	}
	for _, c := range s.Cards {
		out[string(c.ID)] = true
	}
	return out
}

func checkRecord(t *testing.T, id string, added, removed, seen map[string]bool) {
	t.Helper()
	assert.True(t, added[id], "record %s was never added", id)
	assert.False(t, removed[id], "record %s reappeared after removal", id)
	assert.False(t, seen[id], "id %s is shared by two records", id)
	seen[id] = true
}
