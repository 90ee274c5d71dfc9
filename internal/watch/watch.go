// Package watch monitors augmentation inputs (dataset, synonym table, job
// manifest) and reports debounced change events so a run can be repeated when
// its inputs are edited.
package watch

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Change reports one watched file that was modified, created, or removed.
type Change struct {
	File string // Absolute path as reported by the OS
}

// Watcher monitors a fixed set of input files using fsnotify. Events are
// debounced so a burst of editor writes yields one change.
type Watcher struct {
	Changes <-chan Change // Read-only external channel

	files   map[string]struct{}
	changes chan Change
	quit    chan struct{}
	done    chan struct{}
	watcher *fsnotify.Watcher
}

// New creates a watcher for the given files. Directories containing the files
// are watched rather than the files themselves, since editors commonly
// replace files by rename.
func New(files ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	set := make(map[string]struct{}, len(files))
	for _, f := range files {
		set[filepath.Clean(f)] = struct{}{}
	}

	ch := make(chan Change, 16)
	w := &Watcher{
		Changes: ch,
		files:   set,
		changes: ch,
		quit:    make(chan struct{}),
		done:    make(chan struct{}),
		watcher: fw,
	}
	return w, nil
}

// Start begins watching the parent directories of all registered files.
func (w *Watcher) Start() error {
	dirs := make(map[string]struct{})
	for f := range w.files {
		dirs[filepath.Dir(f)] = struct{}{}
	}
	for dir := range dirs {
		if err := w.watcher.Add(dir); err != nil {
			return err
		}
	}

	go w.loop()
	return nil
}

// Stop closes the watcher and channels. Safe even when nobody is draining
// Changes: the quit signal unblocks any send still in flight in the loop.
func (w *Watcher) Stop() {
	close(w.quit)
	w.watcher.Close()
	<-w.done // Wait for loop to exit
	close(w.changes)
}

func (w *Watcher) loop() {
	defer close(w.done)

	// Debounce: track last event time per file.
	const debounce = 100 * time.Millisecond
	pending := make(map[string]time.Time)
	ticker := time.NewTicker(debounce)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				// Drain pending on close.
				for file := range pending {
					if !w.emit(file) {
						return
					}
				}
				return
			}

			if !w.isWatched(event.Name) {
				continue
			}

			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				pending[event.Name] = time.Now()
			}

		case _, ok := <-ticker.C:
			if !ok {
				return
			}
			now := time.Now()
			for file, t := range pending {
				if now.Sub(t) >= debounce {
					if !w.emit(file) {
						return
					}
					delete(pending, file)
				}
			}

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Ignore watch errors; they're non-fatal.
		}
	}
}

// emit delivers a change unless the watcher is stopping. Reports false once
// quit is closed so the loop can exit instead of blocking on a full buffer.
func (w *Watcher) emit(file string) bool {
	select {
	case w.changes <- Change{File: file}:
		return true
	case <-w.quit:
		return false
	}
}

func (w *Watcher) isWatched(name string) bool {
	_, ok := w.files[filepath.Clean(name)]
	return ok
}
