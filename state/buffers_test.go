package state

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/grovetools/playground/errors"
	"github.com/grovetools/playground/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuffersLoadAllEmpty(t *testing.T) {
	loaded, err := NewBuffers(NewMemoryBackend()).LoadAll()
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestBuffersRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.yml")
	snap := models.Snapshot{Markup: "<b>x</b>", Style: "", Script: "console.log(1)"}
	require.NoError(t, NewBuffers(NewFileBackend(path)).SaveAll(snap))

	loaded, err := NewBuffers(NewFileBackend(path)).LoadAll()
	require.NoError(t, err)
	assert.Equal(t, Loaded{
		models.Markup: "<b>x</b>",
		models.Style:  "",
		models.Script: "console.log(1)",
	}, loaded)
}

func TestBuffersRoundTripIndentedSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.yml")
	snap := models.Snapshot{
		Markup: "<ul>\n\t<li>one</li>\n</ul>\n",
		Style:  "\tbody {\r\n\t\tmargin: 0;\r\n\t}\r\n",
		Script: "\tconsole.log(1)\n",
	}
	require.NoError(t, NewBuffers(NewFileBackend(path)).SaveAll(snap))

	loaded, err := NewBuffers(NewFileBackend(path)).LoadAll()
	require.NoError(t, err)
	assert.Equal(t, Loaded{
		models.Markup: snap.Markup,
		models.Style:  snap.Style,
		models.Script: snap.Script,
	}, loaded)

	require.NoError(t, NewBuffers(NewFileBackend(path)).SaveAll(snap))
}

func TestBuffersUseFixedKeys(t *testing.T) {
	backend := NewMemoryBackend()
	require.NoError(t, NewBuffers(backend).SaveAll(models.Snapshot{Markup: "m", Style: "s", Script: "j"}))

	for key, want := range map[string]string{"htmlCode": "m", "cssCode": "s", "jsCode": "j"} {
		got, ok, err := backend.Get(key)
		require.NoError(t, err)
		assert.True(t, ok, key)
		assert.Equal(t, want, got, key)
	}
}

func TestBuffersPartialState(t *testing.T) {
	backend := NewMemoryBackend()
	require.NoError(t, backend.Set("cssCode", "p{}"))

	loaded, err := NewBuffers(backend).LoadAll()
	require.NoError(t, err)
	assert.Equal(t, Loaded{models.Style: "p{}"}, loaded)
}

type failingBackend struct{}

func (failingBackend) Get(string) (string, bool, error) { return "", false, fmt.Errorf("io error") }
func (failingBackend) Set(string, string) error { return fmt.Errorf("io error") }
func (failingBackend) Delete(string) error { return fmt.Errorf("io error") }
func (failingBackend) Update(string, UpdateFunc) error { return fmt.Errorf("io error") }
func (failingBackend) Close() error { return nil }

func TestBuffersWrapStorageErrors(t *testing.T) {
	b := NewBuffers(failingBackend{})

	_, err := b.LoadAll()
	assert.True(t, errors.Is(err, errors.ErrCodeStorageRead))

	err = b.SaveAll(models.Snapshot{})
	assert.True(t, errors.Is(err, errors.ErrCodeStorageWrite))
}
