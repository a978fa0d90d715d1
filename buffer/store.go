// Package buffer holds the live content of the markup, style and script
// channels for one editing session.
package buffer

import (
	"sync"

	"github.com/grovetools/playground/pkg/models"
)

// Mirror receives the full buffer content after every mutation.
type Mirror interface {
	SaveAll(snapshot models.Snapshot) error
}

// Store is the only mutable live state of a session.
type Store struct {
	mu      sync.RWMutex
	content models.Snapshot
	mirror  Mirror
}

// NewStore creates an empty store. A nil mirror disables persistence.
func NewStore(mirror Mirror) *Store {
	return &Store{mirror: mirror}
}

// Get returns the current content of a channel.
func (s *Store) Get(c models.Channel) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.content.Get(c)
}

// Snapshot returns the content of all channels.
func (s *Store) Snapshot() models.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.content
}

// Set replaces a channel's content and writes the new state through to the
// mirror before returning. Memory is updated even when the mirror fails; the
// mirror's error is returned so the caller can report it.
func (s *Store) Set(c models.Channel, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.content = s.content.With(c, text)
	if s.mirror == nil {
		return nil
	}
	return s.mirror.SaveAll(s.content)
}

// Replace sets every channel at once with a single mirror write.
func (s *Store) Replace(snapshot models.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.content = snapshot
	if s.mirror == nil {
		return nil
	}
	return s.mirror.SaveAll(s.content)
}

// Restore seeds the store from persisted content at startup. Channels that
// were never persisted keep their current value. Nothing is mirrored.
func (s *Store) Restore(loaded map[models.Channel]string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for c, text := range loaded {
		s.content = s.content.With(c, text)
	}
}
