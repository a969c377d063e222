package storage

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"brewbell/internal/core/model"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a beverage file whenever it changes on disk.
type Watcher struct {
	Path    string
	Updates <-chan []model.Beverage

	updates  chan []model.Beverage
	done     chan struct{}
	watcher  *fsnotify.Watcher
	debounce time.Duration
	logger   *slog.Logger
}

// NewWatcher creates a watcher for the beverage file at path.
func NewWatcher(path string, logger *slog.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create beverage watcher: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}

	ch := make(chan []model.Beverage, 4)
	return &Watcher{
		Path:     filepath.Clean(path),
		Updates:  ch,
		updates:  ch,
		done:     make(chan struct{}),
		watcher:  fw,
		debounce: 200 * time.Millisecond,
		logger:   logger,
	}, nil
}

// Start begins watching. The file's directory is watched so that editors
// which replace the file atomically are still observed.
func (w *Watcher) Start() error {
	if err := w.watcher.Add(filepath.Dir(w.Path)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(w.Path), err)
	}
	go w.loop()
	return nil
}

// Stop closes the watcher and the Updates channel.
func (w *Watcher) Stop() {
	w.watcher.Close()
	<-w.done
	close(w.updates)
}

func (w *Watcher) loop() {
	defer close(w.done)

	var pending <-chan time.Time
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.Path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			pending = time.After(w.debounce)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("beverage watcher error", "error", err)

		case <-pending:
			pending = nil
			beverages, err := LoadBeverages(w.Path)
			if err != nil {
				w.logger.Warn("reload beverages", "path", w.Path, "error", err)
				continue
			}
			select {
			case w.updates <- beverages:
			default:
				w.logger.Debug("dropping beverage reload, consumer busy")
			}
		}
	}
}
