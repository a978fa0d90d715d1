// Package watcher connects a workspace directory to a session: edits to
// index.html, style.css and script.js are fed into the buffers and the
// preview is recomposed to an output file.
package watcher

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/grovetools/playground/logging"
	"github.com/grovetools/playground/pkg/models"
	"github.com/grovetools/playground/preview"
	"github.com/sirupsen/logrus"
)

// DefaultDebounce is the quiet period used when Options.Debounce is zero.
const DefaultDebounce = 200 * time.Millisecond

// Target is the session the watcher edits.
type Target interface {
	Get(c models.Channel) string
	Set(c models.Channel, text string) error
	Preview() preview.Document
}

// Options configures a Watcher.
type Options struct {
	// Dir holds the channel files.
	Dir string
	// Output receives the composed preview after every applied change.
	// Empty disables preview output.
	Output string
	// Frame, when set, writes the sandboxed host page instead of the bare
	// document.
	Frame *preview.Device
	// Debounce is the quiet period after the last write to a file before
	// it is applied.
	Debounce time.Duration
	// OnApply is called after a channel was updated from its file.
	OnApply func(c models.Channel)
	Logger  *logrus.Entry
}

// Watcher watches a workspace directory.
type Watcher struct {
	target Target
	opts   Options
	fsw    *fsnotify.Watcher
	logger *logrus.Entry
}

// New starts watching opts.Dir. Call Sync to align files and buffers, then
// Run.
func New(target Target, opts Options) (*Watcher, error) {
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	if opts.Logger == nil {
		opts.Logger = logging.NewLogger("watcher")
	}
	if opts.Dir == "" {
		opts.Dir = "."
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(opts.Dir); err != nil {
		fsw.Close()
		return nil, err
	}

	return &Watcher{target: target, opts: opts, fsw: fsw, logger: opts.Logger}, nil
}

// Sync loads every existing channel file into the session and writes the
// session's content for channels whose file is missing. The preview is
// written afterwards.
func (w *Watcher) Sync() error {
	present, err := ReadWorkspace(w.opts.Dir)
	if err != nil {
		return err
	}
	for _, c := range models.Channels {
		text, ok := present[c]
		if !ok {
			if err := writeAtomic(filepath.Join(w.opts.Dir, Files[c]), []byte(w.target.Get(c))); err != nil {
				return err
			}
			continue
		}
		if text != w.target.Get(c) {
			if err := w.target.Set(c, text); err != nil {
				return err
			}
		}
	}
	return w.writePreview()
}

// Run processes file events until ctx is cancelled. Writes to one file
// within the debounce window are applied once, with the file's final
// content.
func (w *Watcher) Run(ctx context.Context) error {
	timers := make(map[models.Channel]*time.Timer)
	fire := make(chan models.Channel)
	done := make(chan struct{})
	defer close(done)
	defer func() {
		for _, t := range timers {
			t.Stop()
		}
	}()

	w.logger.WithField("dir", w.opts.Dir).Info("Watching workspace")
	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			w.logger.Debugf("fsnotify event: %s op=%v", event.Name, event.Op)
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			c, ok := channelFor(filepath.Base(event.Name))
			if !ok {
				continue
			}
			if t := timers[c]; t != nil {
				t.Stop()
			}
			timers[c] = time.AfterFunc(w.opts.Debounce, func() {
				select {
				case fire <- c:
				case <-done:
				}
			})

		case c := <-fire:
			delete(timers, c)
			w.apply(c)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.WithError(err).Error("Watcher error")

		case <-ctx.Done():
			return nil
		}
	}
}

func (w *Watcher) apply(c models.Channel) {
	log := w.logger.WithField("channel", c)

	data, err := os.ReadFile(filepath.Join(w.opts.Dir, Files[c]))
	if err != nil {
		log.WithError(err).Debug("Skipping unreadable file")
		return
	}
	text := string(data)
	if text == w.target.Get(c) {
		return
	}

	if err := w.target.Set(c, text); err != nil {
		log.WithError(err).Error("Failed to apply change")
		return
	}
	log.Info("Buffer updated from file")

	if err := w.writePreview(); err != nil {
		log.WithError(err).Error("Failed to write preview")
	}
	if w.opts.OnApply != nil {
		w.opts.OnApply(c)
	}
}

func (w *Watcher) writePreview() error {
	if w.opts.Output == "" {
		return nil
	}
	doc := w.target.Preview()
	data := []byte(doc.String())
	if w.opts.Frame != nil {
		var buf bytes.Buffer
		if err := preview.Frame(&buf, doc, *w.opts.Frame); err != nil {
			return err
		}
		data = buf.Bytes()
	}
	return writeAtomic(w.opts.Output, data)
}

// Close stops the watcher and releases resources.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}
