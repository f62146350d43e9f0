package snapshot

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/chatter/keybar/internal/logger"
)

// DebounceInterval is how long Watch waits after a change before reloading,
// so an editor's write-then-rename lands as one reload.
const DebounceInterval = 100 * time.Millisecond

// Watcher reports changes to a single snapshot file.
//
// The parent directory is watched rather than the file itself so that
// editors which replace the file by rename keep being tracked.
type Watcher struct {
	watcher  *fsnotify.Watcher
	path     string
	filtered chan fsnotify.Event
	done     chan struct{}
	log      *logger.Logger
}

// NewWatcher starts watching path.
func NewWatcher(path string, log *logger.Logger) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving snapshot path: %w", err)
	}
	log = log.With("snapshot", abs)
	log.Debug("creating snapshot watcher")

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Error("failed to create fsnotify watcher", "err", err)
		return nil, fmt.Errorf("creating fsnotify watcher: %w", err)
	}

	dir := filepath.Dir(abs)
	if err := watcher.Add(dir); err != nil {
		log.Error("failed to watch snapshot directory", "dir", dir, "err", err)
		watcher.Close()
		return nil, fmt.Errorf("watching %s: %w", dir, err)
	}

	self := &Watcher{
		watcher:  watcher,
		path:     abs,
		filtered: make(chan fsnotify.Event, 1),
		done:     make(chan struct{}),
		log:      log,
	}

	go self.filterEvents()

	log.Info("watcher started")
	return self, nil
}

// Events returns the channel of events that touch the snapshot file.
func (w *Watcher) Events() <-chan fsnotify.Event {
	return w.filtered
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)

	if err := w.watcher.Close(); err != nil {
		return fmt.Errorf("closing fsnotify watcher: %w", err)
	}
	return nil
}

func (w *Watcher) filterEvents() {
	defer close(w.filtered)

	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.shouldForward(event) {
				continue
			}

			w.log.Debug("snapshot change detected", "op", event.Op.String())

			// Drop when a change is already pending; one reload covers both.
			select {
			case w.filtered <- event:
			default:
				w.log.Debug("watcher event dropped (pending)")
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("watcher error", "err", err)
		}
	}
}

// shouldForward reports whether event changes the snapshot's contents.
func (w *Watcher) shouldForward(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0
}

// Watch loads the snapshot once, then again after every debounced change,
// calling fn with each result. Decode errors are passed to fn rather than
// ending the loop so a half-edited file does not stop the watch. Watch
// returns when ctx is done or the watcher is closed.
func Watch(ctx context.Context, path string, log *logger.Logger, fn func(Request, error)) error {
	w, err := NewWatcher(path, log)
	if err != nil {
		return err
	}
	defer w.Close()

	fn(Load(path))

	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-w.Events():
			if !ok {
				return nil
			}
		}

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(DebounceInterval):
		}

		// Absorb anything that arrived during the debounce.
		select {
		case <-w.Events():
		default:
		}

		fn(Load(path))
	}
}
