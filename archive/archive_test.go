package archive

import (
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/grovetools/playground/errors"
	"github.com/grovetools/playground/pkg/models"
	"github.com/grovetools/playground/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func version(i int) models.Version {
	return models.Version{
		Timestamp: fmt.Sprintf("2026-10-17 09:00:%02d", i),
		HTML:      fmt.Sprintf("<p>%d</p>", i),
		CSS:       "p{color:red}",
		JS:        "",
	}
}

func TestEmptyArchive(t *testing.T) {
	a := New(state.NewMemoryBackend(), "")
	assert.Equal(t, DefaultKey, a.Key())

	versions, err := a.LoadAll()
	require.NoError(t, err)
	assert.NotNil(t, versions)
	assert.Empty(t, versions)

	_, ok, err := a.Latest()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAppendPreservesOrder(t *testing.T) {
	a := New(state.NewMemoryBackend(), "")

	for i := 1; i <= 3; i++ {
		before, err := a.LoadAll()
		require.NoError(t, err)

		v := version(i)
		require.NoError(t, a.Append(v))

		after, err := a.LoadAll()
		require.NoError(t, err)
		require.Len(t, after, len(before)+1)
		assert.Equal(t, before, after[:len(before)])
		assert.Equal(t, v, after[len(after)-1])

		latest, ok, err := a.Latest()
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, v, latest)
	}

	n, err := a.Len()
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestStoredFormat(t *testing.T) {
	backend := state.NewMemoryBackend()
	a := New(backend, "")
	require.NoError(t, a.Append(models.Version{Timestamp: "T1", HTML: "<p>hi</p>"}))

	raw, ok, err := backend.Get(DefaultKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `[{"timestamp":"T1","html":"<p>hi</p>","css":"","js":""}]`, raw)
}

func TestReadsArchiveWrittenElsewhere(t *testing.T) {
	backend := state.NewMemoryBackend()
	require.NoError(t, backend.Set(DefaultKey,
		`[{"timestamp":"1/2/2025, 10:00:00 AM","html":"<p>a</p>","css":"","js":"x()"}]`))

	latest, ok, err := New(backend, "").Latest()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "x()", latest.JS)
}

func TestCorruptArchiveIsAnError(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", "not json"},
		{"truncated", `[{"timestamp":"T1"`},
		{"object", `{"timestamp":"T1","html":"","css":"","js":""}`},
		{"missing field", `[{"timestamp":"T1","html":"","css":""}]`},
		{"wrong type", `[{"timestamp":1,"html":"","css":"","js":""}]`},
		{"null", `null`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := state.NewMemoryBackend()
			require.NoError(t, backend.Set(DefaultKey, tt.raw))
			a := New(backend, "")

			_, err := a.LoadAll()
			assert.True(t, errors.Is(err, errors.ErrCodeArchiveCorrupt), "got %v", err)

			_, _, err = a.Latest()
			assert.True(t, errors.Is(err, errors.ErrCodeArchiveCorrupt))

			// History is never silently replaced.
			err = a.Append(version(1))
			assert.True(t, errors.Is(err, errors.ErrCodeArchiveCorrupt))
			raw, _, _ := backend.Get(DefaultKey)
			assert.Equal(t, tt.raw, raw)
		})
	}
}

func TestGet(t *testing.T) {
	a := New(state.NewMemoryBackend(), "custom")
	require.NoError(t, a.Append(version(1)))
	require.NoError(t, a.Append(version(2)))

	v, err := a.Get(2)
	require.NoError(t, err)
	assert.Equal(t, version(2), v)

	_, err = a.Get(0)
	assert.True(t, errors.Is(err, errors.ErrCodeVersionNotFound))
	_, err = a.Get(3)
	assert.True(t, errors.Is(err, errors.ErrCodeVersionNotFound))
}

func TestConcurrentAppendsAreNotLost(t *testing.T) {
	backend, err := state.OpenSQLite(filepath.Join(t.TempDir(), "archive.db"))
	require.NoError(t, err)
	defer backend.Close()

	a := New(backend, "")
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, a.Append(version(i)))
		}(i)
	}
	wg.Wait()

	versions, err := a.LoadAll()
	require.NoError(t, err)
	assert.Len(t, versions, 20)
}
