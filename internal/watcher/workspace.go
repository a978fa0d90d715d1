package watcher

import (
	"os"
	"path/filepath"

	"github.com/grovetools/playground/pkg/models"
)

// Files maps each channel to its file in a workspace directory.
var Files = map[models.Channel]string{
	models.Markup: "index.html",
	models.Style:  "style.css",
	models.Script: "script.js",
}

func channelFor(name string) (models.Channel, bool) {
	for c, f := range Files {
		if f == name {
			return c, true
		}
	}
	return "", false
}

// ReadWorkspace reads the channel files present in dir. Missing files are
// omitted from the result.
func ReadWorkspace(dir string) (map[models.Channel]string, error) {
	out := make(map[models.Channel]string)
	for _, c := range models.Channels {
		data, err := os.ReadFile(filepath.Join(dir, Files[c]))
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return nil, err
		}
		out[c] = string(data)
	}
	return out, nil
}

// writeAtomic replaces path with data through a temporary file in the same
// directory.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
