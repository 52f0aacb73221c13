// Package watch reports changes to a fixed set of files.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/tliron/commonlog"
)

const DefaultDebounce = 100 * time.Millisecond

// Handler is called with the path as it was given to New.
type Handler func(path string)

// FileWatcher watches the directories containing its files rather than the
// files themselves, so editors that save by renaming a temporary file over
// the watched file are still noticed.
type FileWatcher struct {
	watcher  *fsnotify.Watcher
	files    map[string]string
	handler  Handler
	debounce time.Duration
	log      commonlog.Logger

	mu     sync.Mutex
	timers map[string]*time.Timer
}

func New(paths []string, handler Handler) (*FileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	w := &FileWatcher{
		watcher:  watcher,
		files:    make(map[string]string),
		handler:  handler,
		debounce: DefaultDebounce,
		log:      commonlog.GetLogger("graphlet.watch"),
		timers:   make(map[string]*time.Timer),
	}

	dirs := make(map[string]bool)
	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			watcher.Close()
			return nil, fmt.Errorf("resolve %s: %w", path, err)
		}
		w.files[abs] = path
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			watcher.Close()
			return nil, fmt.Errorf("watch %s: %w", dir, err)
		}
	}

	return w, nil
}

// SetDebounce sets how long a file must stay quiet before the handler runs.
func (w *FileWatcher) SetDebounce(d time.Duration) {
	w.debounce = d
}

// Run delivers events until ctx is done. It closes the underlying watcher
// before returning.
func (w *FileWatcher) Run(ctx context.Context) error {
	defer w.stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil {
				continue
			}
			path, ok := w.files[abs]
			if !ok {
				continue
			}
			w.log.Debugf("%s: %s", event.Op, path)
			w.schedule(path)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.log.Warningf("watch error: %s", err)
		}
	}
}

func (w *FileWatcher) schedule(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if timer, ok := w.timers[path]; ok {
		timer.Stop()
	}
	w.timers[path] = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		delete(w.timers, path)
		w.mu.Unlock()

		w.handler(path)
	})
}

func (w *FileWatcher) stop() {
	w.mu.Lock()
	for path, timer := range w.timers {
		timer.Stop()
		delete(w.timers, path)
	}
	w.mu.Unlock()

	w.watcher.Close()
}
