// Package theme holds the lipgloss styles shared by the CLI output, the log
// formatter and the diff viewer.
package theme

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const defaultThemeName = "kanagawa"

// Colors is the palette a theme is built from.
type Colors struct {
	Green     lipgloss.TerminalColor
	Yellow    lipgloss.TerminalColor
	Red       lipgloss.TerminalColor
	Orange    lipgloss.TerminalColor
	Blue      lipgloss.TerminalColor
	Violet    lipgloss.TerminalColor
	MutedText lipgloss.TerminalColor
	Border    lipgloss.TerminalColor
	InsertBg  lipgloss.TerminalColor
	DeleteBg  lipgloss.TerminalColor
}

// Theme holds the pre-configured styles.
type Theme struct {
	Name   string
	Colors Colors

	Header  lipgloss.Style
	Title   lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Muted   lipgloss.Style
	Accent  lipgloss.Style
	Box     lipgloss.Style

	// Diff segments
	Insert lipgloss.Style
	Delete lipgloss.Style
	Equal  lipgloss.Style
}

var palettes = map[string]func() Colors{
	"kanagawa": kanagawaColors,
	"terminal": terminalColors,
}

// DefaultTheme is the theme selected by PLAYGROUND_THEME, falling back to
// kanagawa.
var DefaultTheme = New(os.Getenv("PLAYGROUND_THEME"))

// New builds the named theme. Unknown names select the default palette.
func New(name string) *Theme {
	key := strings.ToLower(strings.TrimSpace(name))
	build, ok := palettes[key]
	if !ok {
		key = defaultThemeName
		build = palettes[key]
	}
	c := build()

	return &Theme{
		Name:    key,
		Colors:  c,
		Header:  lipgloss.NewStyle().Bold(true).Foreground(c.Orange),
		Title:   lipgloss.NewStyle().Bold(true).Underline(true),
		Success: lipgloss.NewStyle().Bold(true).Foreground(c.Green),
		Error:   lipgloss.NewStyle().Bold(true).Foreground(c.Red),
		Warning: lipgloss.NewStyle().Bold(true).Foreground(c.Yellow),
		Muted:   lipgloss.NewStyle().Foreground(c.MutedText),
		Accent:  lipgloss.NewStyle().Foreground(c.Blue),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c.Border).
			Padding(0, 1),
		Insert: lipgloss.NewStyle().Foreground(c.Green).Background(c.InsertBg),
		Delete: lipgloss.NewStyle().Foreground(c.Red).Background(c.DeleteBg).Strikethrough(true),
		Equal:  lipgloss.NewStyle(),
	}
}

// Use replaces DefaultTheme. An empty name keeps the current theme.
func Use(name string) {
	if strings.TrimSpace(name) == "" {
		return
	}
	DefaultTheme = New(name)
}

func kanagawaColors() Colors {
	return Colors{
		Green:     lipgloss.AdaptiveColor{Light: "#4E7C5A", Dark: "#98BB6C"},
		Yellow:    lipgloss.AdaptiveColor{Light: "#A68A64", Dark: "#FF9E3B"},
		Red:       lipgloss.AdaptiveColor{Light: "#C34043", Dark: "#FF5D62"},
		Orange:    lipgloss.AdaptiveColor{Light: "#CC6B4E", Dark: "#FFA066"},
		Blue:      lipgloss.AdaptiveColor{Light: "#4F7CAC", Dark: "#7FB4CA"},
		Violet:    lipgloss.AdaptiveColor{Light: "#674D7A", Dark: "#957FB8"},
		MutedText: lipgloss.AdaptiveColor{Light: "#6C7086", Dark: "#727169"},
		Border:    lipgloss.AdaptiveColor{Light: "#B5BDC5", Dark: "#363646"},
		InsertBg:  lipgloss.AdaptiveColor{Light: "#E3F1DF", Dark: "#2B3328"},
		DeleteBg:  lipgloss.AdaptiveColor{Light: "#F6DEDE", Dark: "#43242B"},
	}
}

func terminalColors() Colors {
	return Colors{
		Green:     lipgloss.Color("2"),
		Yellow:    lipgloss.Color("3"),
		Red:       lipgloss.Color("1"),
		Orange:    lipgloss.Color("3"),
		Blue:      lipgloss.Color("4"),
		Violet:    lipgloss.Color("5"),
		MutedText: lipgloss.Color("8"),
		Border:    lipgloss.Color("8"),
		InsertBg:  lipgloss.NoColor{},
		DeleteBg:  lipgloss.NoColor{},
	}
}
