// Package diffview is an interactive terminal viewer for a diff report.
package diffview

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/grovetools/playground/logging"
	"github.com/grovetools/playground/pkg/models"
	"github.com/grovetools/playground/session"
	"github.com/grovetools/playground/tui"
	"github.com/grovetools/playground/tui/theme"
	"golang.org/x/term"
)

// Tabs in display order; the empty channel shows every channel.
var tabs = []models.Channel{"", models.Markup, models.Style, models.Script}

// Model is the bubbletea model of the viewer.
type Model struct {
	report   session.Report
	theme    *theme.Theme
	keys     keyMap
	viewport viewport.Model
	tab      int
	width    int
	height   int
}

// New creates a viewer for report sized width x height.
func New(report session.Report, t *theme.Theme, width, height int) Model {
	if t == nil {
		t = theme.DefaultTheme
	}
	m := Model{report: report, theme: t, keys: defaultKeyMap()}
	m.resize(width, height)
	return m
}

func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	// header and footer take one line each; the scrollbar one column
	m.viewport = viewport.New(max(width-1, 1), max(height-2, 1))
	m.refresh()
}

func (m *Model) refresh() {
	wrap := lipgloss.NewStyle().Width(m.viewport.Width)
	m.viewport.SetContent(wrap.Render(RenderReport(m.report, m.theme, tabs[m.tab])))
	m.viewport.GotoTop()
}

// Tab returns the channel shown, or "" for all channels.
func (m Model) Tab() models.Channel {
	return tabs[m.tab]
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.tab = (m.tab + 1) % len(tabs)
			m.refresh()
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.tab = (m.tab + len(tabs) - 1) % len(tabs)
			m.refresh()
			return m, nil
		case key.Matches(msg, m.keys.Up):
			m.viewport.LineUp(1)
			return m, nil
		case key.Matches(msg, m.keys.Down):
			m.viewport.LineDown(1)
			return m, nil
		case key.Matches(msg, m.keys.PageUp):
			m.viewport.HalfViewUp()
			return m, nil
		case key.Matches(msg, m.keys.PageDown):
			m.viewport.HalfViewDown()
			return m, nil
		case key.Matches(msg, m.keys.Top):
			m.viewport.GotoTop()
			return m, nil
		case key.Matches(msg, m.keys.Bottom):
			m.viewport.GotoBottom()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	var tabLabels []string
	for i, c := range tabs {
		label := "All"
		if c != "" {
			label = c.Label()
		}
		if i == m.tab {
			tabLabels = append(tabLabels, m.theme.Accent.Bold(true).Underline(true).Render(label))
		} else {
			tabLabels = append(tabLabels, m.theme.Muted.Render(label))
		}
	}
	header := strings.Join(tabLabels, "  ")

	var help []string
	for _, b := range m.keys.helpLine() {
		h := b.Help()
		help = append(help, fmt.Sprintf("%s %s", h.Key, h.Desc))
	}
	footer := m.theme.Muted.Render(fmt.Sprintf("%3.f%%  %s", m.viewport.ScrollPercent()*100, strings.Join(help, " · ")))

	return lipgloss.JoinVertical(lipgloss.Left, header, withScrollbar(&m.viewport, m.theme), footer)
}

// Run shows report full screen until the user quits. Log output is held
// back while the viewer owns the terminal.
func Run(report session.Report, in io.Reader, out io.Writer) error {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		width, height = 80, 24
	}

	tui.InitializeTUI()
	prev := logging.SetGlobalOutput(io.Discard)
	defer logging.SetGlobalOutput(prev)

	p := tea.NewProgram(New(report, theme.DefaultTheme, width, height),
		tea.WithAltScreen(), tea.WithInput(in), tea.WithOutput(out))
	_, err = p.Run()
	return err
}
