package font

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	glyphed "github.com/gogpu/glyphed"
)

// Watcher observes font source directories for external modifications and
// reports them on a channel. A debounce window batches rapid multi-file
// writes (a save touches many files at once), and self-save suppression
// keeps the editor's own saves from triggering a reload.
type Watcher struct {
	fs       *fsnotify.Watcher
	debounce time.Duration
	changed  chan struct{}
	done     chan struct{}

	// suppress is set just before the editor writes to disk; the next
	// debounced change notification is swallowed instead of delivered.
	suppress atomic.Bool
}

// DefaultDebounce batches change events arriving within one second.
const DefaultDebounce = time.Second

// NewWatcher watches the given directories. For a designspace this is every
// master's source directory; for a single font it is one entry.
func NewWatcher(paths []string, debounce time.Duration) (*Watcher, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("font: no paths to watch")
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("font: create watcher: %w", err)
	}
	for _, p := range paths {
		if err := fs.Add(p); err != nil {
			fs.Close()
			return nil, fmt.Errorf("font: watch %s: %w", p, err)
		}
	}

	w := &Watcher{
		fs:       fs,
		debounce: debounce,
		changed:  make(chan struct{}, 1),
		done:     make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Changed delivers one value per debounced batch of external changes.
func (w *Watcher) Changed() <-chan struct{} {
	return w.changed
}

// SuppressNext marks the next change batch as self-inflicted (the editor is
// about to save), so it will not be reported.
func (w *Watcher) SuppressNext() {
	w.suppress.Store(true)
}

// Close stops the watcher and releases its resources.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fs.Close()
}

func (w *Watcher) run() {
	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-w.done:
			return

		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !ev.Op.Has(fsnotify.Create) && !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Remove) && !ev.Op.Has(fsnotify.Rename) {
				continue
			}
			glyphed.Logger().Debug("font: change event", "path", ev.Name, "op", ev.Op.String())
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				timerC = timer.C
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			glyphed.Logger().Warn("font: watcher error", "err", err)

		case <-timerC:
			timer = nil
			timerC = nil
			if w.suppress.CompareAndSwap(true, false) {
				glyphed.Logger().Debug("font: suppressed self-save notification")
				continue
			}
			// Non-blocking: collapse bursts into one pending signal.
			select {
			case w.changed <- struct{}{}:
			default:
			}
		}
	}
}
