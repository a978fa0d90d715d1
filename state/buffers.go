package state

import (
	"strings"

	"github.com/grovetools/playground/errors"
	"github.com/grovetools/playground/pkg/models"
)

// Loaded maps each channel that was found in storage to its content.
// A channel missing from the map was never persisted.
type Loaded map[models.Channel]string

// Buffers mirrors the three channel buffers into a backend under their fixed
// keys (htmlCode, cssCode, jsCode).
type Buffers struct {
	backend Backend
}

// NewBuffers creates the buffer mirror over backend.
func NewBuffers(backend Backend) *Buffers {
	return &Buffers{backend: backend}
}

// SaveAll writes every channel's content.
func (b *Buffers) SaveAll(snapshot models.Snapshot) error {
	if batch, ok := b.backend.(BatchSetter); ok {
		values := make(map[string]string, len(models.Channels))
		keys := make([]string, 0, len(models.Channels))
		for _, c := range models.Channels {
			values[c.Key()] = snapshot.Get(c)
			keys = append(keys, c.Key())
		}
		if err := batch.SetMany(values); err != nil {
			return errors.StorageWrite(strings.Join(keys, ","), err)
		}
		return nil
	}

	for _, c := range models.Channels {
		if err := b.backend.Set(c.Key(), snapshot.Get(c)); err != nil {
			return errors.StorageWrite(c.Key(), err)
		}
	}
	return nil
}

// LoadAll reads the three channel keys. Missing keys are simply left out of
// the result.
func (b *Buffers) LoadAll() (Loaded, error) {
	loaded := make(Loaded, len(models.Channels))
	for _, c := range models.Channels {
		value, ok, err := b.backend.Get(c.Key())
		if err != nil {
			return nil, errors.StorageRead(c.Key(), err)
		}
		if ok {
			loaded[c] = value
		}
	}
	return loaded, nil
}
