package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name ("default" or "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (selections, tabs, highlights)
	Accent string `yaml:"accent"`

	Background       string `yaml:"background"`
	ColumnBackground string `yaml:"column_background"`

	// Semantic colors
	Create string `yaml:"create"` // creation inputs
	Edit   string `yaml:"edit"`   // rename form
	Delete string `yaml:"delete"` // delete confirmations

	// Board elements
	ColumnBorder   string `yaml:"column_border"`
	CardBorder     string `yaml:"card_border"`
	CardBackground string `yaml:"card_background"`
	SelectedBorder string `yaml:"selected_border"`
	SelectedBg     string `yaml:"selected_bg"`

	// Text
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"`
	Normal string `yaml:"normal"`

	// Notification banners
	InfoFg  string `yaml:"info_fg"`
	InfoBg  string `yaml:"info_bg"`
	ErrorFg string `yaml:"error_fg"`
	ErrorBg string `yaml:"error_bg"`
}

// Presets lists the names GetPreset understands
func Presets() []string {
	return []string{"default", "monochrome"}
}

// GetPreset returns a preset color scheme by name.
// Unknown names fall back to the default scheme.
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	default:
		return Default()
	}
}

// slots returns pointers to every color field in a fixed order so
// schemes can be merged field by field.
func (c *ColorScheme) slots() []*string {
	return []*string{
		&c.Accent,
		&c.Background, &c.ColumnBackground,
		&c.Create, &c.Edit, &c.Delete,
		&c.ColumnBorder, &c.CardBorder, &c.CardBackground, &c.SelectedBorder, &c.SelectedBg,
		&c.Title, &c.Subtle, &c.Normal,
		&c.InfoFg, &c.InfoBg, &c.ErrorFg, &c.ErrorBg,
	}
}

// ApplyDefaults fills empty colors from the named preset.
// Values already set are custom overrides and are kept.
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)
	if c.Preset == "" {
		c.Preset = preset.Preset
	}
	fill(c.slots(), preset.slots(), false)
}

// MergeFrom copies every non-empty color from other, overwriting the
// receiver. Used for theme files layered over the main config.
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	if other.Preset != "" && other.Preset != c.Preset {
		c.Preset = other.Preset
		base := GetPreset(other.Preset)
		fill(c.slots(), base.slots(), true)
	}
	fill(c.slots(), other.slots(), true)
}

func fill(dst, src []*string, overwrite bool) {
	for i := range dst {
		if *src[i] == "" {
			continue
		}
		if overwrite || *dst[i] == "" {
			*dst[i] = *src[i]
		}
	}
}
