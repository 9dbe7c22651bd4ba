package notifications

import (
	"github.com/thenoetrevino/grid/internal/tui/state"
	"github.com/thenoetrevino/grid/internal/tui/theme"
)

// Severity represents the severity level of a notification
type Severity int

const (
	Info Severity = iota
	Error
)

type style struct {
	icon       string
	foreground string
	background string
}

func (s Severity) style() style {
	if s == Error {
		return style{icon: "✕", foreground: theme.ErrorFg, background: theme.ErrorBg}
	}
	return style{icon: "🔔", foreground: theme.InfoFg, background: theme.InfoBg}
}

func severityOf(level state.NotificationLevel) Severity {
	if level == state.LevelError {
		return Error
	}
	return Info
}
