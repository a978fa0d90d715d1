// Package state is the durable key-value mirror of the playground buffers.
//
// Every backend stores plain strings under string keys. Absence of a key is a
// valid state and is reported through the ok flag, never as an error.
package state

import "fmt"

// UpdateFunc receives the current value of a key (ok is false when the key
// was never written) and returns the value to store.
type UpdateFunc func(current string, ok bool) (string, error)

// Backend is a durable string key-value store.
type Backend interface {
	// Get returns the value stored under key.
	Get(key string) (value string, ok bool, err error)
	// Set stores value under key.
	Set(key, value string) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(key string) error
	// Update performs a read-modify-write of key that is atomic with respect
	// to other Set and Update calls on the same backend. If fn returns an
	// error nothing is written.
	Update(key string, fn UpdateFunc) error
	// Close releases the backend's resources.
	Close() error
}

// BatchSetter is implemented by backends that can store several keys in one
// write.
type BatchSetter interface {
	SetMany(values map[string]string) error
}

// Kind names a backend implementation in configuration.
type Kind string

const (
	KindFile   Kind = "file"
	KindSQLite Kind = "sqlite"
	KindMemory Kind = "memory"
)

// Open creates the backend of the given kind. Path is ignored for memory.
func Open(kind Kind, path string) (Backend, error) {
	switch kind {
	case KindFile, "":
		return NewFileBackend(path), nil
	case KindSQLite:
		return OpenSQLite(path)
	case KindMemory:
		return NewMemoryBackend(), nil
	}
	return nil, fmt.Errorf("unknown storage backend %q", kind)
}
