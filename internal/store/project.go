package store

import (
	"github.com/thenoetrevino/grid/internal/idgen"
	"github.com/thenoetrevino/grid/internal/models"
	"github.com/thenoetrevino/grid/internal/types"
)

// ReduceProjects maps (projects, action) to a new project list.
// Recognized actions always produce a freshly allocated slice; anything
// else returns the input unchanged.
func ReduceProjects(projects []models.Project, action Action, ids idgen.Generator) []models.Project {
	switch a := action.(type) {
	case AddProject:
		next := make([]models.Project, 0, len(projects)+1)
		next = append(next, projects...)
		return append(next, models.Project{
			ID:   types.ProjectID(ids.NewID()),
			Name: a.Name,
		})

	case RemoveProject:
		return filter(projects, func(p models.Project) bool { return p.ID != a.ID })

	case UpdateProject:
		next := make([]models.Project, len(projects))
		for i, p := range projects {
			if p.ID == a.ID {
				p.Name = a.Name
			}
			next[i] = p
		}
		return next

	default:
		return projects
	}
}

// filter builds a new slice holding the elements for which keep is true
func filter[T any](in []T, keep func(T) bool) []T {
	out := make([]T, 0, len(in))
	for _, v := range in {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}
