// Package watcher watches the shared config file for external changes.
//
// The config file is shared across all engine invocations, so a
// long-running process reloads its settings when another invocation (or
// the user) rewrites the file. Events are debounced: editors and the
// engine's own write-then-rename save produce bursts of filesystem
// events for a single logical change.
package watcher

import (
	"errors"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the settle time applied before the handler runs.
const DefaultDebounce = 200 * time.Millisecond

// ErrWatcherClosed is returned by Start after Close.
var ErrWatcherClosed = errors.New("watcher closed")

// Handler is called with the config file path after a change settles.
type Handler func(path string)

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce overrides the settle time.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		w.debounce = d
	}
}

// WithLogger overrides the logger used for watch errors.
func WithLogger(logger *slog.Logger) Option {
	return func(w *Watcher) {
		w.logger = logger
	}
}

// Watcher monitors a single config file. It watches the containing
// directory rather than the file itself, so rename-based rewrites and
// recreation after deletion are observed.
type Watcher struct {
	path     string
	handler  Handler
	debounce time.Duration
	logger   *slog.Logger

	fsw *fsnotify.Watcher

	mu      sync.Mutex
	timer   *time.Timer
	started bool
	closed  bool

	done chan struct{}
	wg   sync.WaitGroup
}

// New creates a watcher for the given config file path.
func New(path string, handler Handler, opts ...Option) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		path:     abs,
		handler:  handler,
		debounce: DefaultDebounce,
		logger:   slog.Default(),
		fsw:      fsw,
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Path returns the watched file path.
func (w *Watcher) Path() string {
	return w.path
}

// Start begins watching. It is an error to start a closed watcher;
// starting twice is a no-op.
func (w *Watcher) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrWatcherClosed
	}
	if w.started {
		return nil
	}

	if err := w.fsw.Add(filepath.Dir(w.path)); err != nil {
		return err
	}

	w.started = true
	w.wg.Add(1)
	go w.run()
	return nil
}

// Close stops the watcher and releases its resources. Pending debounced
// events are discarded.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	if w.timer != nil {
		w.timer.Stop()
	}
	close(w.done)
	w.mu.Unlock()

	err := w.fsw.Close()
	w.wg.Wait()
	return err
}

func (w *Watcher) run() {
	defer w.wg.Done()

	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("config watch error", "path", w.path, "error", err)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.path {
		return
	}
	if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Rename) {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		closed := w.closed
		w.mu.Unlock()
		if !closed {
			w.handler(w.path)
		}
	})
}
