package roster

import (
	"context"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"chanpick/internal/eventbus"
)

// quiescence is how long file events must settle before a change fires.
// Editors write rosters with several rapid events (truncate, write, rename).
const quiescence = 100 * time.Millisecond

// Watcher publishes RosterChangedEvent when the roster file changes on disk
type Watcher struct {
	bus  eventbus.EventBus
	path string
	fsw  *fsnotify.Watcher
}

// NewWatcher creates a watcher for the given roster path
func NewWatcher(bus eventbus.EventBus, path string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// Watch the directory: editors often replace the file, which would
	// drop a watch on the file itself.
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, err
	}
	return &Watcher{bus: bus, path: path, fsw: fsw}, nil
}

// Start runs the watch loop until the context is cancelled
func (w *Watcher) Start(ctx context.Context) {
	go w.loop(ctx)
}

// Close releases the underlying filesystem watcher
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

func (w *Watcher) loop(ctx context.Context) {
	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != filepath.Clean(w.path) {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			// Restart the settle timer; only the last event in a burst fires
			if timer == nil {
				timer = time.NewTimer(quiescence)
				fire = timer.C
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(quiescence)
			}

		case <-fire:
			timer = nil
			fire = nil
			w.bus.Publish(eventbus.RosterChangedEvent{Path: w.path})

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			log.Printf("roster watcher error: %v", err)
		}
	}
}
