package config

import "errors"

var (
	// ErrConfigExists is returned by WriteDefault when a file is already present
	ErrConfigExists = errors.New("config file already exists")

	// ErrInvalidLogLevel is returned for a log_level slog cannot parse
	ErrInvalidLogLevel = errors.New("invalid log level")
)
