package store

import (
	"sync"

	"github.com/thenoetrevino/grid/internal/idgen"
)

// route maps a set of action kinds to the transition that updates the
// aggregate state for them. Each route touches exactly the lists it names.
type route struct {
	kinds  []Kind
	reduce func(r *Reducer, s State, a Action) State
}

// routes is the declarative dispatch table of the root reducer.
// Adding an action kind only requires adding an entry here.
func routes() []route {
	return []route{
		{
			kinds: []Kind{KindAddCard, KindRemoveCard},
			reduce: func(r *Reducer, s State, a Action) State {
				s.Cards = ReduceCards(s.Cards, a, r.ids)
				return s
			},
		},
		{
			kinds: []Kind{KindAddColumn, KindRemoveColumn},
			reduce: func(r *Reducer, s State, a Action) State {
				s.Columns = ReduceColumns(s.Columns, a, r.ids)
				return s
			},
		},
		{
			kinds:  []Kind{KindRemoveProject},
			reduce: removeProjectCascade,
		},
		{
			kinds: []Kind{KindAddProject, KindUpdateProject},
			reduce: func(r *Reducer, s State, a Action) State {
				s.Projects = ReduceProjects(s.Projects, a, r.ids)
				return s
			},
		},
	}
}

// removeProjectCascade is the one two-list transition: it removes the
// project and then applies the column filter for the same action.
func removeProjectCascade(r *Reducer, s State, a Action) State {
	s.Projects = ReduceProjects(s.Projects, a, r.ids)
	s.Columns = ReduceColumns(s.Columns, a, r.ids)
	return s
}

// Reducer is the root reducer. It routes each action to the entity
// reducers whose list the action affects.
type Reducer struct {
	ids idgen.Generator

	indexOnce sync.Once
	index     map[Kind]func(*Reducer, State, Action) State
}

// NewReducer creates a root reducer using ids for new records
func NewReducer(ids idgen.Generator) *Reducer {
	if ids == nil {
		ids = idgen.NewRandom()
	}
	return &Reducer{ids: ids}
}

// initIndex builds the kind-to-transition lookup from the route table
func (r *Reducer) initIndex() {
	r.indexOnce.Do(func() {
		r.index = make(map[Kind]func(*Reducer, State, Action) State)
		for _, rt := range routes() {
			for _, k := range rt.kinds {
				r.index[k] = rt.reduce
			}
		}
	})
}

// Handles reports whether the reducer routes the given kind
func (r *Reducer) Handles(kind Kind) bool {
	r.initIndex()
	_, ok := r.index[kind]
	return ok
}

// Reduce applies one action to a snapshot and returns the next snapshot.
// Unknown kinds return the input state unchanged.
func (r *Reducer) Reduce(s State, a Action) State {
	if a == nil {
		return s
	}
	r.initIndex()

	fn, ok := r.index[a.Kind()]
	if !ok {
		return s
	}
	return fn(r, s, a)
}
