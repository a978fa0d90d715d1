package diffview

import (
	"fmt"
	"strings"

	"github.com/grovetools/playground/diff"
	"github.com/grovetools/playground/pkg/models"
	"github.com/grovetools/playground/session"
	"github.com/grovetools/playground/tui/theme"
)

// RenderANSI renders a script with the theme's insert and delete styles.
// Styles are applied per line so a colored span never crosses a newline.
func RenderANSI(s diff.Script, t *theme.Theme) string {
	return diff.RenderFunc(s, func(seg diff.Segment) string {
		style := t.Equal
		switch seg.Op {
		case diff.Insert:
			style = t.Insert
		case diff.Delete:
			style = t.Delete
		}
		lines := strings.Split(seg.Text, "\n")
		for i, l := range lines {
			if l != "" {
				lines[i] = style.Render(l)
			}
		}
		return strings.Join(lines, "\n")
	})
}

// RenderReport renders the report with ANSI styles. A non-empty only
// restricts the output to that channel.
func RenderReport(r session.Report, t *theme.Theme, only models.Channel) string {
	if !r.HasBaseline() {
		return t.Muted.Render(session.NoVersionsMessage)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n\n", t.Muted.Render("Comparing with version:"), t.Accent.Render(r.Baseline.Timestamp))
	for _, c := range r.Channels {
		if only != "" && c.Channel != only {
			continue
		}
		stats := c.Script.Stats()
		fmt.Fprintf(&b, "%s %s\n",
			t.Header.Render(fmt.Sprintf("=== %s Diff ===", c.Channel.Label())),
			t.Muted.Render(fmt.Sprintf("+%d -%d", stats.Inserted, stats.Deleted)))
		b.WriteString(RenderANSI(c.Script, t))
		b.WriteString("\n\n")
	}
	return b.String()
}
