package components

import (
	"github.com/thenoetrevino/grid/internal/tui/anim"
	"github.com/thenoetrevino/grid/internal/tui/theme"
)

// fadeColor blends a foreground toward the board background while an
// entity is still mounting. Zero opacity is treated as unset.
func fadeColor(target string, opacity float64) string {
	if opacity <= 0 {
		return target
	}
	return anim.Fade(target, theme.Background, opacity)
}
