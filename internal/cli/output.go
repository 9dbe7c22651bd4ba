package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool

	// Out and Err default to os.Stdout and os.Stderr
	Out io.Writer
	Err io.Writer
}

// IDLister is implemented by results that can print just their ids in quiet mode
type IDLister interface {
	IDs() []string
}

// Humanizer is implemented by results with a custom human-readable rendering
type Humanizer interface {
	Human() string
}

func (f *OutputFormatter) out() io.Writer {
	if f.Out == nil {
		return os.Stdout
	}
	return f.Out
}

func (f *OutputFormatter) errOut() io.Writer {
	if f.Err == nil {
		return os.Stderr
	}
	return f.Err
}

// Success outputs successful operation result
func (f *OutputFormatter) Success(data any) error {
	if f.Quiet {
		if lister, ok := data.(IDLister); ok {
			ids := lister.IDs()
			if len(ids) == 0 {
				return nil
			}
			_, err := fmt.Fprintln(f.out(), strings.Join(ids, "\n"))
			return err
		}
	}

	if f.JSON {
		return json.NewEncoder(f.out()).Encode(map[string]any{
			"success": true,
			"data":    data,
		})
	}

	return f.prettyPrint(data)
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]any{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return json.NewEncoder(f.out()).Encode(map[string]any{
			"success": false,
			"error":   errData,
		})
	}

	fmt.Fprintf(f.errOut(), "❌ Error: %s\n", message)
	if suggestion != "" {
		fmt.Fprintf(f.errOut(), "💡 Suggestion: %s\n", suggestion)
	}
	return nil
}

// Fail prints err with a code derived from its exit code and returns err
// tagged with that exit code
func (f *OutputFormatter) Fail(err error, suggestion string) error {
	code := ExitCode(err)
	_ = f.ErrorWithSuggestion(ErrorCode(code), err.Error(), suggestion)
	return WithExitCode(err, code)
}

func (f *OutputFormatter) prettyPrint(data any) error {
	if h, ok := data.(Humanizer); ok {
		_, err := fmt.Fprintln(f.out(), h.Human())
		return err
	}
	_, err := fmt.Fprintf(f.out(), "%+v\n", data)
	return err
}
