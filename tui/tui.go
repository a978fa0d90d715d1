// Package tui holds the terminal UI shared by the interactive views.
package tui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// InitializeTUI prepares the color profile before a full-screen program
// starts. CLICOLOR_FORCE=1 or COLORTERM=truecolor force true color, which
// keeps styling when the viewer runs under a recorder or in CI. Otherwise
// the profile is taken from the environment unless colors were disabled.
func InitializeTUI() {
	if os.Getenv("CLICOLOR_FORCE") == "1" || os.Getenv("COLORTERM") == "truecolor" {
		lipgloss.SetColorProfile(termenv.TrueColor)
		return
	}
	if os.Getenv("NO_COLOR") != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}
