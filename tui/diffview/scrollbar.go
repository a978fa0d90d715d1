package diffview

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/grovetools/playground/tui/theme"
)

// scrollbar returns one track character per visible line.
func scrollbar(vp *viewport.Model, height int, t *theme.Theme) []string {
	if height <= 0 {
		return nil
	}
	bar := make([]string, height)

	total := vp.TotalLineCount()
	if total <= vp.Height {
		for i := range bar {
			bar[i] = " "
		}
		return bar
	}

	thumbSize := max(1, (height*vp.Height)/total)
	pct := min(max(vp.ScrollPercent(), 0), 1)
	maxStart := height - thumbSize
	start := min(max(int(float64(maxStart)*pct+0.5), 0), maxStart)

	for i := range bar {
		if i >= start && i < start+thumbSize {
			bar[i] = t.Muted.Render("█")
		} else {
			bar[i] = t.Muted.Render("░")
		}
	}
	return bar
}

// withScrollbar appends the scrollbar to the viewport's visible lines.
func withScrollbar(vp *viewport.Model, t *theme.Theme) string {
	lines := strings.Split(vp.View(), "\n")
	bar := scrollbar(vp, len(lines), t)
	for i := range lines {
		lines[i] += bar[i]
	}
	return strings.Join(lines, "\n")
}
