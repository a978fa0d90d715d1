package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/grovetools/playground/errors"
	"github.com/grovetools/playground/tui/theme"
)

// ErrorHandler provides user-friendly error messages
type ErrorHandler struct {
	Verbose bool
	Out     io.Writer
}

// NewErrorHandler creates a new error handler writing to stderr.
func NewErrorHandler(verbose bool) *ErrorHandler {
	return &ErrorHandler{
		Verbose: verbose,
		Out:     os.Stderr,
	}
}

// Handle prints a message for err based on its code and returns err.
func (h *ErrorHandler) Handle(err error) error {
	if err == nil {
		return nil
	}

	t := theme.DefaultTheme
	fail := func(format string, args ...interface{}) {
		fmt.Fprintf(h.Out, "%s %s\n", t.Error.Render("✗"), fmt.Sprintf(format, args...))
	}
	hint := func(format string, args ...interface{}) {
		fmt.Fprintln(h.Out, t.Muted.Render(fmt.Sprintf(format, args...)))
	}
	detail := func(key string) interface{} {
		if pe, ok := errors.As(err); ok {
			return pe.Details[key]
		}
		return nil
	}

	switch errors.GetCode(err) {
	case errors.ErrCodeConfigNotFound:
		fail("Configuration file not found: %v", detail("path"))

	case errors.ErrCodeConfigInvalid, errors.ErrCodeConfigValidation:
		fail("Invalid configuration: %v", err)
		hint("Run 'playground config' to see the merged configuration.")

	case errors.ErrCodeArchiveCorrupt:
		fail("The version archive under %q cannot be read", detail("key"))
		hint("Fix or remove the stored value; saving is refused until then.")

	case errors.ErrCodeVersionNotFound:
		fail("Version %v does not exist (%v saved)", detail("index"), detail("count"))
		hint("Run 'playground history' to list saved versions.")

	case errors.ErrCodeUnknownChannel:
		fail("Unknown channel %q", detail("channel"))
		hint("Use one of: html, css, js.")

	case errors.ErrCodeFormatFailed:
		fail("Formatting failed: %v", err)

	case errors.ErrCodeStorageRead, errors.ErrCodeStorageWrite:
		fail("Storage error for %v: %v", detail("key"), err)

	default:
		fail("Error: %v", err)
	}

	if h.Verbose {
		if pe, ok := errors.As(err); ok {
			fmt.Fprintf(h.Out, "\nError details:\n%s\n", pe.ToJSON())
		}
	}
	return err
}
