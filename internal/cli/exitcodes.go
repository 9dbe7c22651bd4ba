package cli

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: I/O failures, cancelled runs, or anything that fits no
	// category below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: missing arguments, or writing a config that already exists
	// without --force.
	ExitUsage = 2

	// ExitNotFound indicates a requested file was not found.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: script or config files that fail to decode, empty scripts.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: unresolved $refs, misplaced `as` bindings, steps without a
	// type, unknown log levels.
	ExitValidation = 5
)
