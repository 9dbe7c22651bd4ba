package cli

import (
	"errors"
	"io/fs"

	"github.com/thenoetrevino/grid/internal/config"
	"github.com/thenoetrevino/grid/internal/script"
)

// CodedError carries the process exit code chosen for a failed command
type CodedError struct {
	Code int
	Err  error
}

func (e *CodedError) Error() string {
	return e.Err.Error()
}

func (e *CodedError) Unwrap() error {
	return e.Err
}

// WithExitCode attaches an exit code to err. A nil err stays nil.
func WithExitCode(err error, code int) error {
	if err == nil {
		return nil
	}
	return &CodedError{Code: code, Err: err}
}

// ExitCode returns the exit code for an error returned by a command
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var coded *CodedError
	if errors.As(err, &coded) {
		return coded.Code
	}
	return Classify(err)
}

// Classify maps the sentinel errors of the lower packages to exit codes
func Classify(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, fs.ErrNotExist):
		return ExitNotFound
	case errors.Is(err, config.ErrConfigExists):
		return ExitUsage
	case errors.Is(err, script.ErrUnresolvedRef),
		errors.Is(err, script.ErrInvalidBinding),
		errors.Is(err, script.ErrDuplicateBinding),
		errors.Is(err, script.ErrMissingType),
		errors.Is(err, config.ErrInvalidLogLevel):
		return ExitValidation
	case errors.Is(err, script.ErrDecode),
		errors.Is(err, script.ErrEmptyScript):
		return ExitDataErr
	default:
		return ExitError
	}
}

// ErrorCode returns the short machine-readable code printed with an error
func ErrorCode(exitCode int) string {
	switch exitCode {
	case ExitUsage:
		return "USAGE"
	case ExitNotFound:
		return "NOT_FOUND"
	case ExitDataErr:
		return "INVALID_DATA"
	case ExitValidation:
		return "VALIDATION_FAILED"
	default:
		return "ERROR"
	}
}
