package keymap

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/dshills/keyscope/logging"
)

const defaultDebounce = 250 * time.Millisecond

// Watcher reloads a keymap file whenever it changes on disk. It watches
// the file's directory rather than the file itself so editors that
// replace the file via rename keep triggering reloads.
type Watcher struct {
	path     string
	debounce time.Duration
	onReload func(*Keymap)
	onError  func(error)
	log      *logging.Logger

	watcher *fsnotify.Watcher

	closeOnce sync.Once
	closeCh   chan struct{}
	closedWg  sync.WaitGroup
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithDebounce sets how long the watcher coalesces change events before
// reloading.
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithErrorHandler sets a callback for reload failures. Failures are
// logged either way; the file keeps being watched so a later fix is
// picked up.
func WithErrorHandler(fn func(error)) WatcherOption {
	return func(w *Watcher) { w.onError = fn }
}

// WithWatchLogger sets the watcher's logger.
func WithWatchLogger(log *logging.Logger) WatcherOption {
	return func(w *Watcher) {
		if log != nil {
			w.log = log
		}
	}
}

// NewWatcher starts watching path and calls onReload with each keymap
// that loads and validates after a change. The file must exist and load
// cleanly at start.
func NewWatcher(path string, onReload func(*Keymap), opts ...WatcherOption) (*Watcher, error) {
	if onReload == nil {
		return nil, fmt.Errorf("keymap watcher: nil reload callback")
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(absPath); err != nil {
		return nil, err
	}

	w := &Watcher{
		path:     absPath,
		debounce: defaultDebounce,
		onReload: onReload,
		log:      logging.GetLogger().WithComponent("keymap-watcher"),
		closeCh:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(absPath)); err != nil {
		fsw.Close()
		return nil, err
	}
	w.watcher = fsw

	w.closedWg.Add(1)
	go w.processLoop()

	return w, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Close stops the watcher. It is safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.closeCh)
		w.closedWg.Wait()
		err = w.watcher.Close()
	})
	return err
}

// processLoop handles incoming fsnotify events, coalescing bursts into
// a single reload per debounce window.
func (w *Watcher) processLoop() {
	defer w.closedWg.Done()

	var pending <-chan time.Time

	for {
		select {
		case <-w.closeCh:
			return

		case fsEvent, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.relevant(fsEvent) {
				continue
			}
			pending = time.After(w.debounce)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("watch error: %v", err)

		case <-pending:
			pending = nil
			w.reloadNow()
		}
	}
}

// relevant reports whether an event concerns the watched file and a
// content-affecting operation.
func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Base(ev.Name) != filepath.Base(w.path) {
		return false
	}
	return ev.Op.Has(fsnotify.Write) || ev.Op.Has(fsnotify.Create) || ev.Op.Has(fsnotify.Rename)
}

func (w *Watcher) reloadNow() {
	km, err := LoadFile(w.path)
	if err == nil {
		err = km.Validate()
	}
	if err != nil {
		w.log.Warn("reload failed: %v", err)
		if w.onError != nil {
			w.onError(err)
		}
		return
	}
	w.log.Info("keymap %q reloaded", km.Name)
	w.onReload(km)
}
