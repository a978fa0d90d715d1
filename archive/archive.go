// Package archive is the append-only log of saved versions.
//
// The whole log is stored as one JSON array under a single key of a state
// backend. Appends are read-modify-write updates; the backend's Update keeps
// them atomic and the archive mutex keeps them ordered within the process.
package archive

import (
	"encoding/json"
	"sync"

	"github.com/grovetools/playground/errors"
	"github.com/grovetools/playground/pkg/models"
	"github.com/grovetools/playground/schema"
	"github.com/grovetools/playground/state"
)

// DefaultKey is the storage key of the archive.
const DefaultKey = "miniEditorVersions"

var (
	validatorOnce sync.Once
	validator     *schema.Validator
	validatorErr  error
)

// GenerateSchema returns the JSON schema of a stored archive. Entries may
// carry fields beyond the four known ones.
func GenerateSchema() ([]byte, error) {
	return schema.ReflectArray(&models.Version{}, "Version Archive", true)
}

// shapeValidator returns the validator for the stored array shape.
func shapeValidator() (*schema.Validator, error) {
	validatorOnce.Do(func() {
		doc, err := GenerateSchema()
		if err != nil {
			validatorErr = err
			return
		}
		validator, validatorErr = schema.NewValidator("archive.json", doc)
	})
	return validator, validatorErr
}

// Archive reads and appends versions stored under one key.
type Archive struct {
	backend state.Backend
	key     string
	mu      sync.Mutex
}

// New creates an archive over backend. An empty key selects DefaultKey.
func New(backend state.Backend, key string) *Archive {
	if key == "" {
		key = DefaultKey
	}
	return &Archive{backend: backend, key: key}
}

// Key returns the storage key holding the archive.
func (a *Archive) Key() string {
	return a.key
}

// decode parses a stored archive value. A value that is not an array of
// {timestamp, html, css, js} objects is corrupt.
func (a *Archive) decode(raw string) ([]models.Version, error) {
	v, err := shapeValidator()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternal, "failed to build archive schema")
	}
	if err := v.ValidateJSON([]byte(raw)); err != nil {
		return nil, errors.ArchiveCorrupt(a.key, err)
	}

	var versions []models.Version
	if err := json.Unmarshal([]byte(raw), &versions); err != nil {
		return nil, errors.ArchiveCorrupt(a.key, err)
	}
	if versions == nil {
		versions = []models.Version{}
	}
	return versions, nil
}

// Append adds v after every existing version and stores the full sequence.
func (a *Archive) Append(v models.Version) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.backend.Update(a.key, func(current string, ok bool) (string, error) {
		versions := []models.Version{}
		if ok {
			existing, err := a.decode(current)
			if err != nil {
				return "", err
			}
			versions = existing
		}

		versions = append(versions, v)
		data, err := json.Marshal(versions)
		if err != nil {
			return "", errors.Wrap(err, errors.ErrCodeInternal, "failed to encode version archive")
		}
		return string(data), nil
	})
}

// LoadAll returns every saved version in save order. An archive that was
// never written is empty.
func (a *Archive) LoadAll() ([]models.Version, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	raw, ok, err := a.backend.Get(a.key)
	if err != nil {
		return nil, errors.StorageRead(a.key, err)
	}
	if !ok {
		return []models.Version{}, nil
	}
	return a.decode(raw)
}

// Latest returns the most recently saved version. ok is false when the
// archive is empty.
func (a *Archive) Latest() (v models.Version, ok bool, err error) {
	versions, err := a.LoadAll()
	if err != nil {
		return models.Version{}, false, err
	}
	if len(versions) == 0 {
		return models.Version{}, false, nil
	}
	return versions[len(versions)-1], true, nil
}

// Get returns the version at the 1-based position index, as listed to users.
func (a *Archive) Get(index int) (models.Version, error) {
	versions, err := a.LoadAll()
	if err != nil {
		return models.Version{}, err
	}
	if index < 1 || index > len(versions) {
		return models.Version{}, errors.VersionNotFound(index, len(versions))
	}
	return versions[index-1], nil
}

// Len returns the number of saved versions.
func (a *Archive) Len() (int, error) {
	versions, err := a.LoadAll()
	if err != nil {
		return 0, err
	}
	return len(versions), nil
}
