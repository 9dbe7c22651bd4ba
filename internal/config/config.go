// Package config loads grid's YAML configuration file and layers the
// GRID_* environment overrides on top of it.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/thenoetrevino/grid/internal/config/colors"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	KeyMappings KeyMappings        `yaml:"key_mappings"`
	ColorScheme colors.ColorScheme `yaml:"theme"`
	Animations  *bool              `yaml:"animations,omitempty"`
	LogLevel    string             `yaml:"log_level,omitempty"`

	path string
}

// envOverrides are read from the process environment after the file.
type envOverrides struct {
	ConfigFile  string `env:"GRID_CONFIG_FILE"`
	ThemeFile   string `env:"GRID_THEME_FILE"`
	NoAnimation bool   `env:"GRID_NO_ANIMATION"`
	LogLevel    string `env:"GRID_LOG_LEVEL"`
}

func parseEnv() (envOverrides, error) {
	var ov envOverrides
	if err := env.Parse(&ov); err != nil {
		return ov, fmt.Errorf("parse env: %w", err)
	}
	return ov, nil
}

// Default returns the configuration used when no file exists
func Default() *Config {
	animations := true
	return &Config{
		KeyMappings: DefaultKeyMappings(),
		ColorScheme: DefaultColorScheme(),
		Animations:  &animations,
		LogLevel:    "info",
	}
}

// Load loads config from GRID_CONFIG_FILE or the user's config directory.
// Returns the default config if the file doesn't exist.
func Load() (*Config, error) {
	ov, err := parseEnv()
	if err != nil {
		return nil, err
	}

	path, err := resolvePath(ov)
	if err != nil {
		// No home directory: run on defaults rather than refusing to start
		cfg := Default()
		if err := cfg.applyOverrides(ov); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	cfg, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.applyOverrides(ov); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile reads a single config file without consulting the environment.
// A missing file yields the defaults bound to that path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		cfg := Default()
		cfg.path = path
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.path = path

	cfg.applyDefaults()
	if _, err := cfg.Level(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyOverrides merges the theme file and GRID_* variables into c
func (c *Config) applyOverrides(ov envOverrides) error {
	if ov.ThemeFile != "" {
		if err := c.loadThemeFile(ov.ThemeFile); err != nil {
			return err
		}
	}
	if ov.NoAnimation {
		off := false
		c.Animations = &off
	}
	if ov.LogLevel != "" {
		c.LogLevel = ov.LogLevel
		if _, err := c.Level(); err != nil {
			return err
		}
	}
	return nil
}

// loadThemeFile merges the theme section of another YAML file.
// A missing file is ignored.
func (c *Config) loadThemeFile(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read theme file %s: %w", path, err)
	}

	var themeConfig struct {
		Theme colors.ColorScheme `yaml:"theme"`
	}
	if err := yaml.Unmarshal(data, &themeConfig); err != nil {
		return fmt.Errorf("parse theme file %s: %w", path, err)
	}

	c.ColorScheme.MergeFrom(themeConfig.Theme)
	return nil
}

// AnimationsEnabled reports whether mount transitions should play.
// Unset means enabled.
func (c *Config) AnimationsEnabled() bool {
	return c.Animations == nil || *c.Animations
}

// Level parses LogLevel into a slog level. Empty means info.
func (c *Config) Level() (slog.Level, error) {
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return slog.LevelInfo, fmt.Errorf("%w %q", ErrInvalidLogLevel, c.LogLevel)
	}
	return level, nil
}

// Path returns the file this config was loaded from, or where it would be saved
func (c *Config) Path() (string, error) {
	if c.path != "" {
		return c.path, nil
	}
	return Path()
}

// Save saves the config to the file it was loaded from
func (c *Config) Save() error {
	path, err := c.Path()
	if err != nil {
		return err
	}
	return c.SaveTo(path)
}

// SaveTo writes the config as YAML, creating parent directories
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	c.path = path
	return nil
}

// WriteDefault writes the default config to Path(). An existing file is
// only replaced when force is set.
func WriteDefault(force bool) (string, error) {
	path, err := Path()
	if err != nil {
		return "", err
	}

	if _, err := os.Stat(path); err == nil && !force {
		return path, fmt.Errorf("%w: %s", ErrConfigExists, path)
	}

	if err := Default().SaveTo(path); err != nil {
		return path, err
	}
	return path, nil
}

// Path returns the config file location: GRID_CONFIG_FILE when set,
// otherwise grid/config.yaml under the XDG config directory.
func Path() (string, error) {
	ov, err := parseEnv()
	if err != nil {
		return "", err
	}
	return resolvePath(ov)
}

func resolvePath(ov envOverrides) (string, error) {
	if ov.ConfigFile != "" {
		return ov.ConfigFile, nil
	}

	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "grid", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locate home directory: %w", err)
	}

	return filepath.Join(homeDir, ".config", "grid", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}
