package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitWriterRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := InitWriter(&buf, slog.LevelWarn)

	logger.Info("hidden")
	logger.Warn("shown", "kind", "ADD_PROJECT")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info record written at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "kind=ADD_PROJECT") {
		t.Errorf("warn record missing: %q", out)
	}
	if slog.Default() != logger {
		t.Error("InitWriter should install the logger as slog default")
	}
}

func TestInitCreatesLogFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	closeLog, err := Init(slog.LevelDebug)
	if err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	Logger.Debug("hello")
	if err := closeLog(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(home, ".grid", "logs", "grid.log"))
	if err != nil {
		t.Fatalf("log file not created: %v", err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Errorf("log file missing record: %q", data)
	}
}
