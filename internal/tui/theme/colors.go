// Package theme holds the active color values as plain hex strings so
// renderers can read them without threading the config around.
package theme

import "github.com/thenoetrevino/grid/internal/config/colors"

// Colors holds the current theme colors, initialized by Init
var (
	Highlight        string
	Background       string
	ColumnBackground string
	Subtle           string
	Normal           string
	Title            string
	Create           string
	Edit             string
	Delete           string
	ColumnBorder     string
	CardBorder       string
	CardBg           string
	SelectedBorder   string
	SelectedBg       string
	InfoFg           string
	InfoBg           string
	ErrorFg          string
	ErrorBg          string
)

func init() {
	Init(*colors.Default())
}

// Init initializes the theme colors from the given color scheme
func Init(c colors.ColorScheme) {
	Highlight = c.Accent
	Background = c.Background
	ColumnBackground = c.ColumnBackground
	Subtle = c.Subtle
	Normal = c.Normal
	Title = c.Title
	Create = c.Create
	Edit = c.Edit
	Delete = c.Delete
	ColumnBorder = c.ColumnBorder
	CardBorder = c.CardBorder
	CardBg = c.CardBackground
	SelectedBorder = c.SelectedBorder
	SelectedBg = c.SelectedBg
	InfoFg = c.InfoFg
	InfoBg = c.InfoBg
	ErrorFg = c.ErrorFg
	ErrorBg = c.ErrorBg
}
