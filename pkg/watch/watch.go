// Package watch re-runs extraction whenever the source document changes.
package watch

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"gopkg.in/fsnotify.v1"
)

// Watcher observes a single source file and invokes a callback after each
// write, debounced so editors that write in bursts trigger one callback.
type Watcher struct {
	path     string
	debounce time.Duration
	onChange func(path string)

	watcher  *fsnotify.Watcher
	stopChan chan struct{}

	mu    sync.Mutex
	timer *time.Timer
}

// New creates a Watcher for the given file. A zero debounce defaults to
// 500ms.
func New(path string, debounce time.Duration, onChange func(path string)) *Watcher {
	if debounce <= 0 {
		debounce = 500 * time.Millisecond
	}
	return &Watcher{
		path:     filepath.Clean(path),
		debounce: debounce,
		onChange: onChange,
	}
}

// Start begins watching. The containing directory is watched rather than
// the file itself so replace-by-rename saves are still observed.
func (w *Watcher) Start() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}

	w.watcher = watcher
	w.stopChan = make(chan struct{})

	go w.watchLoop()

	dir := filepath.Dir(w.path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	return nil
}

// Stop stops watching and releases the underlying watcher.
func (w *Watcher) Stop() {
	if w.stopChan != nil {
		close(w.stopChan)
	}
	if w.watcher != nil {
		w.watcher.Close()
	}
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()
}

func (w *Watcher) watchLoop() {
	for {
		select {
		case <-w.stopChan:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.scheduleCallback()

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
		}
	}
}

// scheduleCallback arms (or rewinds) the debounce timer.
func (w *Watcher) scheduleCallback() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		w.onChange(w.path)
	})
}
