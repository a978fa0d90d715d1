package state

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// awkwardValues are buffer contents that plain YAML scalars cannot carry.
var awkwardValues = map[string]string{
	"leading tab":          "\tconsole.log(1)\n\tconsole.log(2)\n",
	"tab after newline":    "function f() {\n\treturn 1\n}\n",
	"crlf":                 "a {\r\n  color: red;\r\n}\r\n",
	"lone cr":              "line1\rline2",
	"nul":                  "a\x00b",
	"invalid utf8":         "ok \xff\xfe bytes",
	"truncated rune":       "\xe2\x82",
	"trailing spaces":      "body {}   \n   ",
	"looks like a mapping": "key: value\n- item\n",
	"document marker":      "---\n...\n",
	"unicode":              "héllo ☃ \u2028 end",
	"quotes":               `"double" 'single' \back`,
}

func backends(t *testing.T) map[string]Backend {
	t.Helper()
	dir := t.TempDir()

	sqlite, err := OpenSQLite(filepath.Join(dir, "state.db"))
	require.NoError(t, err)
	memSQLite, err := OpenSQLite(":memory:")
	require.NoError(t, err)

	all := map[string]Backend{
		"file":          NewFileBackend(filepath.Join(dir, "nested", "state.yml")),
		"sqlite":        sqlite,
		"sqlite-memory": memSQLite,
		"memory":        NewMemoryBackend(),
	}
	t.Cleanup(func() {
		for _, b := range all {
			b.Close()
		}
	})
	return all
}

func TestBackendConformance(t *testing.T) {
	for name, b := range backends(t) {
		t.Run(name, func(t *testing.T) {
			t.Run("missing key is absent", func(t *testing.T) {
				v, ok, err := b.Get("never.written")
				require.NoError(t, err)
				assert.False(t, ok)
				assert.Equal(t, "", v)
			})

			t.Run("set and get", func(t *testing.T) {
				require.NoError(t, b.Set("k", "line1\nline2"))
				v, ok, err := b.Get("k")
				require.NoError(t, err)
				assert.True(t, ok)
				assert.Equal(t, "line1\nline2", v)
			})

			t.Run("empty string is present", func(t *testing.T) {
				require.NoError(t, b.Set("empty", ""))
				v, ok, err := b.Get("empty")
				require.NoError(t, err)
				assert.True(t, ok)
				assert.Equal(t, "", v)
			})

			t.Run("update sees current value", func(t *testing.T) {
				require.NoError(t, b.Update("counter", func(cur string, ok bool) (string, error) {
					assert.False(t, ok)
					return cur + "a", nil
				}))
				require.NoError(t, b.Update("counter", func(cur string, ok bool) (string, error) {
					assert.True(t, ok)
					return cur + "b", nil
				}))
				v, _, err := b.Get("counter")
				require.NoError(t, err)
				assert.Equal(t, "ab", v)
			})

			t.Run("failed update writes nothing", func(t *testing.T) {
				err := b.Update("counter", func(string, bool) (string, error) {
					return "zzz", fmt.Errorf("refused")
				})
				assert.EqualError(t, err, "refused")
				v, _, err := b.Get("counter")
				require.NoError(t, err)
				assert.Equal(t, "ab", v)
			})

			t.Run("delete", func(t *testing.T) {
				require.NoError(t, b.Delete("k"))
				require.NoError(t, b.Delete("k"))
				_, ok, err := b.Get("k")
				require.NoError(t, err)
				assert.False(t, ok)
			})

			t.Run("awkward values round trip", func(t *testing.T) {
				for label, value := range awkwardValues {
					require.NoError(t, b.Set("awkward", value), label)
					v, ok, err := b.Get("awkward")
					require.NoError(t, err, label)
					assert.True(t, ok, label)
					assert.Equal(t, value, v, label)
				}
			})

			t.Run("batch set", func(t *testing.T) {
				batch, ok := b.(BatchSetter)
				require.True(t, ok)
				require.NoError(t, batch.SetMany(map[string]string{"x": "1", "y": "2"}))
				v, _, err := b.Get("y")
				require.NoError(t, err)
				assert.Equal(t, "2", v)
			})
		})
	}
}

func TestFileBackendSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.yml")
	require.NoError(t, NewFileBackend(path).Set("htmlCode", "<p>hi</p>"))

	v, ok, err := NewFileBackend(path).Get("htmlCode")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "<p>hi</p>", v)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestFileBackendReopensAwkwardValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.yml")
	writer := NewFileBackend(path)
	for label, value := range awkwardValues {
		require.NoError(t, writer.Set(label, value))
	}

	reader := NewFileBackend(path)
	for label, value := range awkwardValues {
		v, ok, err := reader.Get(label)
		require.NoError(t, err, label)
		assert.True(t, ok, label)
		assert.Equal(t, value, v, label)
	}
}

func TestFileBackendReadsBlockScalars(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.yml")
	legacy := "htmlCode: |\n    <p>hi</p>\n    <p>there</p>\njsCode: console.log(1)\n"
	require.NoError(t, os.WriteFile(path, []byte(legacy), 0644))

	v, ok, err := NewFileBackend(path).Get("htmlCode")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "<p>hi</p>\n<p>there</p>\n", v)
}

func TestFileBackendReportsUnparseableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.yml")
	require.NoError(t, os.WriteFile(path, []byte("- not\n- a map\n"), 0644))

	_, _, err := NewFileBackend(path).Get("htmlCode")
	assert.ErrorContains(t, err, "parse state file")
}

func TestOpen(t *testing.T) {
	b, err := Open(KindMemory, "")
	require.NoError(t, err)
	assert.IsType(t, &MemoryBackend{}, b)

	b, err = Open("", filepath.Join(t.TempDir(), "s.yml"))
	require.NoError(t, err)
	assert.IsType(t, &FileBackend{}, b)

	_, err = Open("redis", "")
	assert.Error(t, err)
}
