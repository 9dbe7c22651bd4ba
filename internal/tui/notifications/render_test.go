package notifications

import (
	"strings"
	"testing"

	"github.com/thenoetrevino/grid/internal/tui/state"
)

func TestRenderInlineFromState(t *testing.T) {
	tests := []struct {
		level state.NotificationLevel
		icon  string
	}{
		{state.LevelInfo, "🔔"},
		{state.LevelError, "✕"},
	}

	for _, tt := range tests {
		out := RenderInlineFromState(state.Notification{Level: tt.level, Message: "hello"})
		if !strings.Contains(out, tt.icon+" hello") {
			t.Errorf("level %d rendered %q, want icon %q", tt.level, out, tt.icon)
		}
	}
}
