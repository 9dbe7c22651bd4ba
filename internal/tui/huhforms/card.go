package huhforms

import "charm.land/huh/v2"

const descriptionLines = 5

// CreateCardForm creates the add-card form. The confirm field is the submit
// button: the card is only added when it is left on "Submit".
func CreateCardForm(name, description *string, confirm *bool) *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Key("name").
			Title("Card Name").
			Placeholder("Enter card name...").
			Value(name),

		huh.NewText().
			Key("description").
			Title("Description").
			Placeholder("Markdown is supported...").
			Lines(descriptionLines).
			Value(description),

		huh.NewConfirm().
			Key("confirm").
			Affirmative("Submit").
			Negative("Cancel").
			Value(confirm),
	}

	form := huh.NewForm(huh.NewGroup(fields...))
	return form.WithKeyMap(CreateKeyMapWithShiftEnter()).WithShowHelp(false)
}
