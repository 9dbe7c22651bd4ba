// Package launcher is the composition root: it loads config, sets up
// logging, owns the store and runs the TUI program.
package launcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/grid/internal/config"
	"github.com/thenoetrevino/grid/internal/logging"
	"github.com/thenoetrevino/grid/internal/script"
	"github.com/thenoetrevino/grid/internal/store"
	"github.com/thenoetrevino/grid/internal/tui"
)

// Options tune a launch
type Options struct {
	// Script is replayed into the store before the board is shown
	Script string
}

// Launch starts the TUI application
func Launch(ctx context.Context, opts Options) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	level, err := cfg.Level()
	if err != nil {
		return err
	}

	// Initialize logging to file before anything else touches slog
	closeLog, err := logging.Init(level)
	if err != nil {
		return fmt.Errorf("initialize logging: %w", err)
	}
	defer func() {
		if err := closeLog(); err != nil {
			fmt.Fprintf(os.Stderr, "close log file: %v\n", err)
		}
	}()

	// Create root context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	s, err := NewStore(ctx, opts)
	if err != nil {
		return err
	}

	cfgPath, _ := cfg.Path()
	slog.Info("starting tui", "config", cfgPath, "animations", cfg.AnimationsEnabled())

	p := tea.NewProgram(tui.InitialModel(s, cfg), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			slog.Info("shutdown signal received")
			return nil
		}
		return fmt.Errorf("run program: %w", err)
	}

	slog.Info("tui exited", "dispatches", s.Version())
	return nil
}

// NewStore builds the store the TUI runs on, replaying opts.Script into it
// when set
func NewStore(ctx context.Context, opts Options) (*store.Store, error) {
	s := store.New(store.WithLogger(slog.Default()))
	if opts.Script == "" {
		return s, nil
	}

	res, err := script.NewRunner(s, slog.Default()).RunFile(ctx, opts.Script)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", opts.Script, err)
	}
	slog.Info("loaded script", "path", opts.Script, "steps", res.Steps, "ignored", len(res.Ignored))
	return s, nil
}
