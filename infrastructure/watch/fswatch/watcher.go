// ABOUTME: Watcher implementation over OS file-change notifications
// ABOUTME: Watches the parent directory so atomic file replacement is still observed

package fswatch

import (
	"path/filepath"
	"sync"

	"catalog-app-api/core/interfaces"
	"github.com/fsnotify/fsnotify"
)

// Watcher observes files through fsnotify
type Watcher struct {
	logger interfaces.Logger
}

// NewWatcher creates a new file-system watcher
func NewWatcher(logger interfaces.Logger) *Watcher {
	return &Watcher{logger: logger}
}

// Watch starts observing path and invokes onChange whenever it is written,
// created, renamed, or removed. Editors and deploy tools often replace a
// file instead of writing into it, so the watch is registered on the parent
// directory and events are filtered by name.
func (w *Watcher) Watch(path string, onChange func()) (interfaces.Subscription, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := fw.Add(filepath.Dir(path)); err != nil {
		_ = fw.Close()
		return nil, err
	}

	sub := &subscription{fw: fw}
	target := filepath.Clean(path)

	go func() {
		for {
			select {
			case ev, ok := <-fw.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) != 0 {
					if w.logger != nil {
						w.logger.Debug("Backing file changed", map[string]interface{}{
							"path": ev.Name,
							"op":   ev.Op.String(),
						})
					}
					onChange()
				}
			case err, ok := <-fw.Errors:
				if !ok {
					return
				}
				if w.logger != nil {
					w.logger.Warn("File watch error", map[string]interface{}{
						"path":  path,
						"error": err.Error(),
					})
				}
			}
		}
	}()

	return sub, nil
}

// subscription wraps the fsnotify watcher lifecycle
type subscription struct {
	fw   *fsnotify.Watcher
	once sync.Once
	err  error
}

// Close stops the watch. Safe to call more than once.
func (s *subscription) Close() error {
	s.once.Do(func() {
		s.err = s.fw.Close()
	})
	return s.err
}
