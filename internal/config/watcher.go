package config

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"numfield/internal/logging"
)

// Watcher reloads the config file when it changes on disk and publishes
// each valid reload on Updates. Invalid edits are logged and skipped.
//
// The parent directory is watched rather than the file so that editors
// which save by rename are still seen.
type Watcher struct {
	mu       sync.Mutex
	watcher  *fsnotify.Watcher
	path     string
	updates  chan *Config
	stopCh   chan struct{}
	doneCh   chan struct{}
	running  bool
	debounce *debouncer

	// serializes reloads fired by the debouncer
	reloadMu sync.Mutex
}

// NewWatcher creates a watcher for the config file at path.
func NewWatcher(path string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	return &Watcher{
		watcher:  fw,
		path:     filepath.Clean(abs),
		updates:  make(chan *Config, 1),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
		debounce: newDebouncer(200 * time.Millisecond),
	}, nil
}

// Updates delivers reloaded configs. Only the latest unread one is kept.
func (w *Watcher) Updates() <-chan *Config {
	return w.updates
}

// Start begins watching. It is non-blocking.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
		return err
	}
	logging.Get(logging.CategoryConfig).Infow("watching config", "path", w.path)

	go w.run(ctx)
	return nil
}

// Stop stops the watcher and waits for the loop to exit.
func (w *Watcher) Stop() {
	w.mu.Lock()
	wasRunning := w.running
	w.running = false
	w.mu.Unlock()

	if wasRunning {
		close(w.stopCh)
		<-w.doneCh
	}
	w.debounce.Cancel()
	if err := w.watcher.Close(); err != nil {
		logging.Get(logging.CategoryConfig).Errorw("error closing config watcher", "error", err)
	}
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)
	defer w.debounce.Cancel()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
				continue
			}
			logging.Get(logging.CategoryConfig).Debugw("config file event", "op", event.Op.String())
			w.debounce.Debounce(w.reload)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logging.Get(logging.CategoryConfig).Errorw("config watcher error", "error", err)
		}
	}
}

func (w *Watcher) reload() {
	w.reloadMu.Lock()
	defer w.reloadMu.Unlock()
	defer logging.StartTimer(logging.CategoryConfig, "config reload").StopWithThreshold(100 * time.Millisecond)
	log := logging.Get(logging.CategoryConfig)

	cfg, err := Load(w.path)
	if err != nil {
		log.Warnw("config reload failed", "error", err)
		return
	}
	if err := cfg.Validate(); err != nil {
		log.Warnw("reloaded config is invalid, keeping previous", "error", err)
		return
	}

	select {
	case <-w.updates:
	default:
	}
	w.updates <- cfg
	log.Infow("config reloaded", "path", w.path)
}
