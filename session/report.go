package session

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/grovetools/playground/diff"
	"github.com/grovetools/playground/pkg/models"
)

// NoVersionsMessage is the rendering of a report without a saved version.
const NoVersionsMessage = "No saved versions found."

// ChannelDiff is the edit script of one channel.
type ChannelDiff struct {
	Channel models.Channel `json:"channel"`
	Script  diff.Script    `json:"script"`
}

// Report compares the current buffers with the latest saved version.
// Baseline is nil when nothing was ever saved; Channels is then empty.
type Report struct {
	Baseline *models.Version `json:"baseline"`
	Channels []ChannelDiff   `json:"channels"`
}

// MarshalJSON always writes baseline and channels. Without a baseline the
// baseline is null and message carries NoVersionsMessage.
func (r Report) MarshalJSON() ([]byte, error) {
	type fields Report
	out := struct {
		fields
		Message string `json:"message,omitempty"`
	}{fields: fields(r)}
	if out.Channels == nil {
		out.Channels = []ChannelDiff{}
	}
	if !r.HasBaseline() {
		out.Message = NoVersionsMessage
	}
	return json.Marshal(out)
}

// HasBaseline reports whether a saved version was available to compare.
func (r Report) HasBaseline() bool {
	return r.Baseline != nil
}

// Changed reports whether any channel differs from the baseline.
func (r Report) Changed() bool {
	for _, c := range r.Channels {
		if !c.Script.Identical() {
			return true
		}
	}
	return false
}

// Render formats the report with the given markers.
func (r Report) Render(m diff.Markers) string {
	return r.RenderFunc(func(s diff.Script) string {
		return diff.Render(s, m)
	})
}

// RenderFunc formats the report, rendering each channel's script with fn.
func (r Report) RenderFunc(fn func(diff.Script) string) string {
	if !r.HasBaseline() {
		return NoVersionsMessage
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Comparing with version: %s\n\n", r.Baseline.Timestamp)
	for _, c := range r.Channels {
		fmt.Fprintf(&b, "=== %s Diff ===\n", c.Channel.Label())
		b.WriteString(fn(c.Script))
		b.WriteString("\n\n")
	}
	return b.String()
}

// DiffLatest compares every channel with the most recently saved version.
// Without a saved version the report has no baseline; a corrupt archive is
// an error.
func (s *Session) DiffLatest() (Report, error) {
	latest, ok, err := s.archive.Latest()
	if err != nil {
		return Report{}, err
	}
	if !ok {
		return Report{}, nil
	}

	current := s.store.Snapshot()
	base := latest.Snapshot()
	report := Report{Baseline: &latest}
	for _, c := range models.Channels {
		report.Channels = append(report.Channels, ChannelDiff{
			Channel: c,
			Script:  diff.Diff(base.Get(c), current.Get(c)),
		})
	}
	return report, nil
}
