package huhforms

import "charm.land/huh/v2"

// CreateRenameProjectForm creates a single-field form for renaming a project
func CreateRenameProjectForm(name *string) *huh.Form {
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Key("name").
			Title("Rename Project").
			Placeholder("Enter project name...").
			Value(name),
	))
	return form.WithShowHelp(false)
}
