// Package watch reports changed config files so they can be reloaded while
// the game runs.
package watch

import (
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce drops repeated events for the same file within this window.
// Editors often write a file more than once per save.
const DefaultDebounce = 100 * time.Millisecond

// Watcher watches directories and emits the names of matching files that changed
type Watcher struct {
	watcher  *fsnotify.Watcher
	match    func(name string) bool
	debounce time.Duration

	Events chan string
	Errors chan error

	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// NewWatcher watches dirs (not recursively). Only files for which match
// returns true are reported; a nil match reports everything.
func NewWatcher(match func(name string) bool, dirs ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watcher := &Watcher{
		watcher:  w,
		match:    match,
		debounce: DefaultDebounce,
		Events:   make(chan string, 16),
		Errors:   make(chan error, 1),
		closeCh:  make(chan struct{}),
		done:     make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

// Close stops watching. Events and Errors are closed once the loop exits.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
	})
	return err
}

// Drain returns the distinct file names received so far without blocking
func (w *Watcher) Drain() []string {
	var names []string
	seen := make(map[string]bool)
	for {
		select {
		case name, ok := <-w.Events:
			if !ok {
				return names
			}
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		default:
			return names
		}
	}
}

func (w *Watcher) run() {
	defer func() {
		close(w.Events)
		close(w.Errors)
		close(w.done)
	}()

	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if w.match != nil && !w.match(event.Name) {
				continue
			}
			now := time.Now()
			if t, ok := last[event.Name]; ok && now.Sub(t) < w.debounce {
				continue
			}
			last[event.Name] = now
			select {
			case w.Events <- event.Name:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
				// a pending error is already waiting to be read
			}
		case <-w.closeCh:
			return
		}
	}
}
