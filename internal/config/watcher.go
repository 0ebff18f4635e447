package config

import (
	"errors"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// ErrWatcherClosed indicates an operation on a closed watcher.
var ErrWatcherClosed = errors.New("config watcher is closed")

// ReloadHandler receives freshly loaded options after the watched file
// changes, or the load error when the new contents are malformed.
type ReloadHandler func(opts *Options, err error)

// Watcher reloads options whenever the configuration file changes.
// The host editor keeps one per configuration file and closes it on exit.
type Watcher struct {
	path    string
	handler ReloadHandler
	fsw     *fsnotify.Watcher

	mu     sync.Mutex
	closed bool
	done   chan struct{}
}

// Watch starts watching path and calls handler with reloaded options on
// every write. The file's directory is watched so the common replace-by-
// rename save strategy of editors is seen as well.
func Watch(path string, handler ReloadHandler) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		fsw.Close()
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		path:    abs,
		handler: handler,
		fsw:     fsw,
		done:    make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// run delivers reloads until the watcher closes.
func (w *Watcher) run() {
	defer close(w.done)
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if ev.Name != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.handler(Load(w.path))
		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
		}
	}
}

// Close stops watching and waits for the delivery goroutine to exit.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return ErrWatcherClosed
	}
	w.closed = true
	w.mu.Unlock()

	err := w.fsw.Close()
	<-w.done
	return err
}
