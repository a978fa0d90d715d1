package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/grovetools/playground/tui/theme"
)

// PrettyLogger writes user-facing status lines, separate from the
// structured logs.
type PrettyLogger struct {
	writer io.Writer
	theme  *theme.Theme
}

// NewPrettyLogger creates a pretty logger writing to stderr.
func NewPrettyLogger() *PrettyLogger {
	return &PrettyLogger{writer: os.Stderr, theme: theme.DefaultTheme}
}

// WithWriter sets a custom writer for pretty output
func (p *PrettyLogger) WithWriter(w io.Writer) *PrettyLogger {
	p.writer = w
	return p
}

// Success logs a success message with a checkmark
func (p *PrettyLogger) Success(message string) {
	fmt.Fprintf(p.writer, "%s %s\n", p.theme.Success.Render("✓"), p.theme.Success.Render(message))
}

// Info logs a plain informational line.
func (p *PrettyLogger) Info(message string) {
	fmt.Fprintln(p.writer, message)
}

// Warn logs a warning with a marker.
func (p *PrettyLogger) Warn(message string) {
	fmt.Fprintf(p.writer, "%s %s\n", p.theme.Warning.Render("⚠"), p.theme.Warning.Render(message))
}

// Error logs an error with a marker.
func (p *PrettyLogger) Error(message string, err error) {
	fmt.Fprintf(p.writer, "%s %s", p.theme.Error.Render("✗"), p.theme.Error.Render(message))
	if err != nil {
		fmt.Fprintf(p.writer, ": %s", p.theme.Error.Render(err.Error()))
	}
	fmt.Fprintln(p.writer)
}

// Field logs a key-value pair.
func (p *PrettyLogger) Field(key string, value interface{}) {
	fmt.Fprintf(p.writer, "%s: %s\n", p.theme.Muted.Render(key), p.theme.Accent.Render(fmt.Sprint(value)))
}

// Path logs a file path.
func (p *PrettyLogger) Path(label, path string) {
	fmt.Fprintf(p.writer, "%s: %s\n", p.theme.Muted.Render(label), p.theme.Accent.Italic(true).Render(path))
}

// Divider prints a visual divider
func (p *PrettyLogger) Divider() {
	fmt.Fprintln(p.writer, p.theme.Muted.Render(strings.Repeat("─", 60)))
}
