package session

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/grovetools/playground/diff"
	"github.com/grovetools/playground/errors"
	"github.com/grovetools/playground/format"
	"github.com/grovetools/playground/pkg/models"
	"github.com/grovetools/playground/state"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l.WithField("component", "test")
}

func fixedClock(ts ...time.Time) func() time.Time {
	i := 0
	return func() time.Time {
		t := ts[i%len(ts)]
		i++
		return t
	}
}

var t1 = time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC)

func openSession(t *testing.T, backend state.Backend, opts ...func(*Options)) *Session {
	t.Helper()
	o := Options{Backend: backend, Clock: fixedClock(t1), Logger: quietLogger()}
	for _, fn := range opts {
		fn(&o)
	}
	s, err := Open(o)
	require.NoError(t, err)
	return s
}

func TestOpenRequiresBackend(t *testing.T) {
	_, err := Open(Options{})
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))
}

func TestFreshSessionIsEmpty(t *testing.T) {
	s := openSession(t, state.NewMemoryBackend())
	assert.Equal(t, models.Snapshot{}, s.Snapshot())

	versions, err := s.Versions()
	require.NoError(t, err)
	assert.Empty(t, versions)
}

func TestSetPersistsAcrossSessions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.yml")

	s := openSession(t, state.NewFileBackend(path))
	require.NoError(t, s.Set(models.Markup, "<p>hi</p>"))
	require.NoError(t, s.Set(models.Script, "console.log(1)"))

	loaded, err := state.NewBuffers(state.NewFileBackend(path)).LoadAll()
	require.NoError(t, err)
	assert.Equal(t, "<p>hi</p>", loaded[models.Markup])

	reopened := openSession(t, state.NewFileBackend(path))
	assert.Equal(t, models.Snapshot{Markup: "<p>hi</p>", Style: "", Script: "console.log(1)"}, reopened.Snapshot())
}

func TestSaveVersionAndDiffScenario(t *testing.T) {
	s := openSession(t, state.NewMemoryBackend())
	require.NoError(t, s.Set(models.Markup, "<p>hi</p>"))

	v, err := s.SaveVersion()
	require.NoError(t, err)
	assert.Equal(t, models.Version{Timestamp: "2026-10-17 09:30:00", HTML: "<p>hi</p>"}, v)

	require.NoError(t, s.Set(models.Markup, "<p>hi there</p>"))

	report, err := s.DiffLatest()
	require.NoError(t, err)
	require.True(t, report.HasBaseline())
	assert.True(t, report.Changed())
	require.Len(t, report.Channels, 3)

	html := report.Channels[0]
	assert.Equal(t, models.Markup, html.Channel)
	assert.Equal(t, "<p>hi</p>", html.Script.Old())
	assert.Equal(t, "<p>hi there</p>", html.Script.New())
	assert.Equal(t, diff.Script{
		{Op: diff.Equal, Text: "<p>hi"},
		{Op: diff.Insert, Text: " there"},
		{Op: diff.Equal, Text: "</p>"},
	}, html.Script)

	assert.Equal(t,
		"Comparing with version: 2026-10-17 09:30:00\n\n"+
			"=== HTML Diff ===\n<p>hi<ins> there</ins></p>\n\n"+
			"=== CSS Diff ===\n\n\n"+
			"=== JS Diff ===\n\n\n",
		report.Render(diff.HTMLMarkers))
}

func TestDiffWithoutVersions(t *testing.T) {
	s := openSession(t, state.NewMemoryBackend())
	require.NoError(t, s.Set(models.Markup, "<p>x</p>"))

	report, err := s.DiffLatest()
	require.NoError(t, err)
	assert.False(t, report.HasBaseline())
	assert.Empty(t, report.Channels)
	assert.False(t, report.Changed())
	assert.Equal(t, NoVersionsMessage, report.Render(diff.TextMarkers))

	data, err := json.Marshal(report)
	require.NoError(t, err)
	assert.JSONEq(t, `{"baseline":null,"channels":[],"message":"No saved versions found."}`, string(data))
}

func TestDiffComparesWithMostRecentVersion(t *testing.T) {
	t2 := t1.Add(time.Minute)
	s := openSession(t, state.NewMemoryBackend(), func(o *Options) { o.Clock = fixedClock(t1, t2) })

	require.NoError(t, s.Set(models.Style, "a"))
	_, err := s.SaveVersion()
	require.NoError(t, err)
	require.NoError(t, s.Set(models.Style, "b"))
	_, err = s.SaveVersion()
	require.NoError(t, err)

	report, err := s.DiffLatest()
	require.NoError(t, err)
	assert.Equal(t, "2026-10-17 09:31:00", report.Baseline.Timestamp)
	assert.False(t, report.Changed())
}

func TestDiffReportsCorruptArchive(t *testing.T) {
	backend := state.NewMemoryBackend()
	require.NoError(t, backend.Set("miniEditorVersions", "{broken"))
	s := openSession(t, backend)

	_, err := s.DiffLatest()
	assert.True(t, errors.Is(err, errors.ErrCodeArchiveCorrupt))
}

func TestRestore(t *testing.T) {
	backend := state.NewMemoryBackend()
	s := openSession(t, backend)
	require.NoError(t, s.Set(models.Markup, "v1"))
	_, err := s.SaveVersion()
	require.NoError(t, err)
	require.NoError(t, s.Set(models.Markup, "v2"))

	v, err := s.Restore(1)
	require.NoError(t, err)
	assert.Equal(t, "v1", v.HTML)
	assert.Equal(t, "v1", s.Get(models.Markup))

	versions, err := s.Versions()
	require.NoError(t, err)
	assert.Len(t, versions, 1)

	loaded, err := state.NewBuffers(backend).LoadAll()
	require.NoError(t, err)
	assert.Equal(t, "v1", loaded[models.Markup])

	_, err = s.Restore(2)
	assert.True(t, errors.Is(err, errors.ErrCodeVersionNotFound))
}

func TestPreviewUsesCurrentBuffers(t *testing.T) {
	s := openSession(t, state.NewMemoryBackend())
	require.NoError(t, s.Set(models.Markup, "<b>x</b>"))
	require.NoError(t, s.Set(models.Style, "b{color:red}"))
	require.NoError(t, s.Set(models.Script, "console.log(1)"))

	doc := s.Preview().String()
	assert.Contains(t, doc, "<b>x</b>")
	assert.Contains(t, doc, "b{color:red}")
	assert.Contains(t, doc, "console.log(1)")
}

func failOn(lang models.Language) format.Formatter {
	return format.Func(func(text string, l models.Language) (string, error) {
		if l == lang {
			return "", fmt.Errorf("unexpected token")
		}
		return strings.TrimSpace(text) + "\n", nil
	})
}

func TestFormatAllOrNothing(t *testing.T) {
	s := openSession(t, state.NewMemoryBackend(), func(o *Options) { o.Formatter = failOn(models.LangJS) })
	require.NoError(t, s.Set(models.Markup, "  <p>a</p>  "))
	require.NoError(t, s.Set(models.Script, "let ="))
	before := s.Snapshot()

	err := s.Format()
	assert.True(t, errors.Is(err, errors.ErrCodeFormatFailed))
	assert.Equal(t, before, s.Snapshot())
}

func TestFormatPerChannel(t *testing.T) {
	s := openSession(t, state.NewMemoryBackend(), func(o *Options) {
		o.Formatter = failOn(models.LangJS)
		o.FormatPolicy = format.PerChannel
	})
	require.NoError(t, s.Set(models.Markup, "  <p>a</p>  "))
	require.NoError(t, s.Set(models.Script, "let ="))

	err := s.Format()
	assert.Error(t, err)
	assert.Equal(t, "<p>a</p>\n", s.Get(models.Markup))
	assert.Equal(t, "let =", s.Get(models.Script))
}

func TestFormatSuccess(t *testing.T) {
	s := openSession(t, state.NewMemoryBackend(), func(o *Options) { o.Formatter = failOn("none") })
	require.NoError(t, s.Set(models.Style, " p{} "))

	require.NoError(t, s.Format())
	assert.Equal(t, "p{}\n", s.Get(models.Style))
	assert.Equal(t, "\n", s.Get(models.Markup))
}
