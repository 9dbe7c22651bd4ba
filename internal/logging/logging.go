// Package logging routes slog and the standard log package to a file so
// nothing is printed over the terminal UI.
package logging

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
)

// Logger is the global slog instance for the application
var Logger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Path returns the log file location, ~/.grid/logs/grid.log
func Path() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locate home directory: %w", err)
	}
	return filepath.Join(homeDir, ".grid", "logs", "grid.log"), nil
}

// Init opens the log file in append mode and installs a text handler at
// the given level as the slog default. The returned function closes the file.
func Init(level slog.Leveler) (func() error, error) {
	logPath, err := Path()
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	InitWriter(file, level)
	return file.Close, nil
}

// InitWriter installs a text handler writing to w. Init uses it for the
// log file; tests pass a buffer.
func InitWriter(w io.Writer, level slog.Leveler) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})

	Logger = slog.New(handler)
	slog.SetDefault(Logger)

	// Redirect standard log package output to the same destination
	log.SetOutput(w)
	log.SetFlags(log.LstdFlags)

	return Logger
}
