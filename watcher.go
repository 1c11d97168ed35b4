package main

import (
	"errors"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

// debounceInterval is the minimum gap between processed change notifications
// for the same path. Editors often fire several events per save.
const debounceInterval = 500 * time.Millisecond

// fileChangedMsg is sent when one of the compared files changes on disk. It
// is advisory: receiving it never mutates edit buffers, the model decides
// whether to reload.
type fileChangedMsg struct {
	path string
}

// Debouncer suppresses events that arrive within interval of the previous
// processed event for the same path. The clock is injectable for tests.
type Debouncer struct {
	mu       sync.Mutex
	interval time.Duration
	now      func() time.Time
	last     map[string]time.Time
}

// NewDebouncer creates a debouncer using the wall clock.
func NewDebouncer(interval time.Duration) *Debouncer {
	return &Debouncer{
		interval: interval,
		now:      time.Now,
		last:     make(map[string]time.Time),
	}
}

// Allow reports whether an event for path should be processed now, and if so
// records it as the path's latest processed event.
func (d *Debouncer) Allow(path string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	now := d.now()
	if last, ok := d.last[path]; ok && now.Sub(last) < d.interval {
		return false
	}
	d.last[path] = now
	return true
}

// Watcher monitors the two compared files for external changes.
type Watcher struct {
	watcher   *fsnotify.Watcher
	debouncer *Debouncer
	logger    *Logger
	paths     []string
}

// NewWatcher creates a watcher over the given paths.
func NewWatcher(logger *Logger, paths ...string) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		watcher:   fsWatcher,
		debouncer: NewDebouncer(debounceInterval),
		logger:    logger,
		paths:     paths,
	}

	for _, path := range paths {
		if err := fsWatcher.Add(path); err != nil {
			logger.Warn("watch file", map[string]any{"path": path, "error": err.Error()})
		}
	}

	return w, nil
}

// WaitForChange blocks until the next debounced change on either file and
// delivers it as a message.
func (w *Watcher) WaitForChange() tea.Cmd {
	return func() tea.Msg {
		for {
			select {
			case event, ok := <-w.watcher.Events:
				if !ok {
					return errMsg{errors.New("watcher closed")}
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
					continue
				}
				if !w.watched(event.Name) {
					continue
				}
				// Atomic saves replace the inode, which drops the watch.
				// Re-add after a short delay so the new file exists again.
				if event.Op&(fsnotify.Rename|fsnotify.Remove) != 0 {
					go w.rewatch(event.Name)
				}
				if !w.debouncer.Allow(event.Name) {
					continue
				}
				return fileChangedMsg{path: event.Name}

			case err, ok := <-w.watcher.Errors:
				if !ok {
					return errMsg{errors.New("watcher closed")}
				}
				w.logger.Error("watcher error", err, nil)
			}
		}
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

func (w *Watcher) watched(path string) bool {
	for _, p := range w.paths {
		if p == path {
			return true
		}
	}
	return false
}

func (w *Watcher) rewatch(path string) {
	time.Sleep(100 * time.Millisecond)
	w.watcher.Remove(path)
	if err := w.watcher.Add(path); err != nil {
		w.logger.Warn("re-watch file", map[string]any{"path": path, "error": err.Error()})
	}
}
