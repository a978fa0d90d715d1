// Package session owns one playground editing session: the live buffers,
// their durable mirror, the version archive and the formatter.
package session

import (
	"time"

	"github.com/grovetools/playground/archive"
	"github.com/grovetools/playground/buffer"
	"github.com/grovetools/playground/errors"
	"github.com/grovetools/playground/format"
	"github.com/grovetools/playground/logging"
	"github.com/grovetools/playground/pkg/models"
	"github.com/grovetools/playground/preview"
	"github.com/grovetools/playground/state"
	"github.com/sirupsen/logrus"
)

// DefaultTimestampLayout formats version timestamps.
const DefaultTimestampLayout = "2006-01-02 15:04:05"

// Options configures a session. Only Backend is required.
type Options struct {
	Backend         state.Backend
	ArchiveKey      string
	Formatter       format.Formatter
	FormatPolicy    format.Policy
	TimestampLayout string
	Clock           func() time.Time
	Logger          *logrus.Entry
}

// Session is the context passed to every playground operation.
type Session struct {
	store     *buffer.Store
	persisted *state.Buffers
	archive   *archive.Archive
	formatter format.Formatter
	policy    format.Policy
	layout    string
	clock     func() time.Time
	logger    *logrus.Entry
}

// Open creates a session and loads the persisted buffers. Channels that were
// never persisted start empty.
func Open(opts Options) (*Session, error) {
	if opts.Backend == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "session requires a storage backend")
	}
	if opts.Formatter == nil {
		opts.Formatter = format.Default()
	}
	if opts.FormatPolicy == "" {
		opts.FormatPolicy = format.AllOrNothing
	}
	if opts.TimestampLayout == "" {
		opts.TimestampLayout = DefaultTimestampLayout
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = logging.NewLogger("session")
	}

	persisted := state.NewBuffers(opts.Backend)
	s := &Session{
		store:     buffer.NewStore(persisted),
		persisted: persisted,
		archive:   archive.New(opts.Backend, opts.ArchiveKey),
		formatter: opts.Formatter,
		policy:    opts.FormatPolicy,
		layout:    opts.TimestampLayout,
		clock:     opts.Clock,
		logger:    opts.Logger,
	}

	loaded, err := persisted.LoadAll()
	if err != nil {
		return nil, err
	}
	s.store.Restore(loaded)
	s.logger.WithField("channels", len(loaded)).Debug("Loaded persisted buffers")
	return s, nil
}

// Get returns the current content of a channel.
func (s *Session) Get(c models.Channel) string {
	return s.store.Get(c)
}

// Set replaces a channel's content; the new state is persisted before Set
// returns.
func (s *Session) Set(c models.Channel, text string) error {
	if err := s.store.Set(c, text); err != nil {
		s.logger.WithError(err).WithField("channel", c).Error("Failed to persist buffer")
		return err
	}
	s.logger.WithField("channel", c).WithField("bytes", len(text)).Debug("Buffer updated")
	return nil
}

// Snapshot returns the content of all channels.
func (s *Session) Snapshot() models.Snapshot {
	return s.store.Snapshot()
}

// SaveVersion seals the current buffers into a new archive entry.
func (s *Session) SaveVersion() (models.Version, error) {
	v := models.NewVersion(s.clock().Format(s.layout), s.store.Snapshot())
	if err := s.archive.Append(v); err != nil {
		return models.Version{}, err
	}
	s.logger.WithField("timestamp", v.Timestamp).Info("Version saved")
	return v, nil
}

// Versions returns the archive in save order.
func (s *Session) Versions() ([]models.Version, error) {
	return s.archive.LoadAll()
}

// Version returns the archived version at 1-based position index.
func (s *Session) Version(index int) (models.Version, error) {
	return s.archive.Get(index)
}

// Restore copies an archived version back into the buffers. The archive is
// not modified.
func (s *Session) Restore(index int) (models.Version, error) {
	v, err := s.archive.Get(index)
	if err != nil {
		return models.Version{}, err
	}
	if err := s.store.Replace(v.Snapshot()); err != nil {
		return models.Version{}, err
	}
	s.logger.WithField("index", index).WithField("timestamp", v.Timestamp).Info("Version restored")
	return v, nil
}

// Preview composes the current buffers into a document.
func (s *Session) Preview() preview.Document {
	snap := s.store.Snapshot()
	return preview.Compose(snap.Markup, snap.Style, snap.Script)
}

// Format reformats the buffers under the session's policy. Under
// all-or-nothing a failure leaves every buffer unchanged.
func (s *Session) Format() error {
	before := s.store.Snapshot()
	after, ferr := format.Apply(before, s.formatter, s.policy)
	if after != before {
		if err := s.store.Replace(after); err != nil {
			return err
		}
	}
	if ferr != nil {
		s.logger.WithError(ferr).WithField("policy", s.policy).Warn("Formatting failed")
		return ferr
	}
	s.logger.Debug("Buffers formatted")
	return nil
}
