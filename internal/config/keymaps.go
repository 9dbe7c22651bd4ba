package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Projects
	CreateProject string `yaml:"create_project"`
	RenameProject string `yaml:"rename_project"`
	DeleteProject string `yaml:"delete_project"`
	PrevProject   string `yaml:"prev_project"`
	NextProject   string `yaml:"next_project"`

	// Columns
	CreateColumn string `yaml:"create_column"`
	DeleteColumn string `yaml:"delete_column"`
	PrevColumn   string `yaml:"prev_column"`
	NextColumn   string `yaml:"next_column"`

	// Cards
	AddCard    string `yaml:"add_card"`
	DeleteCard string `yaml:"delete_card"`
	ViewCard   string `yaml:"view_card"`
	PrevCard   string `yaml:"prev_card"`
	NextCard   string `yaml:"next_card"`

	// Forms
	SaveForm string `yaml:"save_form"`

	// Viewport
	ScrollViewportLeft  string `yaml:"scroll_viewport_left"`
	ScrollViewportRight string `yaml:"scroll_viewport_right"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		CreateProject: "P",
		RenameProject: "R",
		DeleteProject: "D",
		PrevProject:   "{",
		NextProject:   "}",

		CreateColumn: "C",
		DeleteColumn: "X",
		PrevColumn:   "h",
		NextColumn:   "l",

		AddCard:    "a",
		DeleteCard: "d",
		ViewCard:   "space",
		PrevCard:   "k",
		NextCard:   "j",

		SaveForm: "ctrl+s",

		ScrollViewportLeft:  "[",
		ScrollViewportRight: "]",

		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	d := DefaultKeyMappings()

	pairs := []struct {
		value *string
		def   string
	}{
		{&k.CreateProject, d.CreateProject},
		{&k.RenameProject, d.RenameProject},
		{&k.DeleteProject, d.DeleteProject},
		{&k.PrevProject, d.PrevProject},
		{&k.NextProject, d.NextProject},
		{&k.CreateColumn, d.CreateColumn},
		{&k.DeleteColumn, d.DeleteColumn},
		{&k.PrevColumn, d.PrevColumn},
		{&k.NextColumn, d.NextColumn},
		{&k.AddCard, d.AddCard},
		{&k.DeleteCard, d.DeleteCard},
		{&k.ViewCard, d.ViewCard},
		{&k.PrevCard, d.PrevCard},
		{&k.NextCard, d.NextCard},
		{&k.SaveForm, d.SaveForm},
		{&k.ScrollViewportLeft, d.ScrollViewportLeft},
		{&k.ScrollViewportRight, d.ScrollViewportRight},
		{&k.ShowHelp, d.ShowHelp},
		{&k.Quit, d.Quit},
	}
	for _, p := range pairs {
		if *p.value == "" {
			*p.value = p.def
		}
	}
}
