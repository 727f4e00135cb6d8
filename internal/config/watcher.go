package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// DefaultDebounce is how long the watcher waits for a burst of writes to
// settle before reporting a change.
const DefaultDebounce = 100 * time.Millisecond

// Watcher reports changes to a single config file
type Watcher struct {
	watcher  *fsnotify.Watcher
	path     string
	debounce time.Duration
	onChange func(path string)

	stopOnce sync.Once
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// NewWatcher creates a watcher for path. The file's directory is watched
// rather than the file, because editors often save by replacing the file.
func NewWatcher(path string, onChange func(path string)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		_ = fw.Close()
		return nil, err
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, err
	}

	return &Watcher{
		watcher:  fw,
		path:     abs,
		debounce: DefaultDebounce,
		onChange: onChange,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string { return w.path }

// Start begins watching for changes
func (w *Watcher) Start() {
	go w.watchLoop()
}

// Stop stops the watcher. It is safe to call more than once.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopCh)
		_ = w.watcher.Close()
	})
}

// watchLoop processes filesystem events
func (w *Watcher) watchLoop() {
	defer close(w.doneCh)

	// Editors emit several events per save; report once they settle.
	debounceTimer := time.NewTimer(0)
	<-debounceTimer.C
	pending := false

	for {
		select {
		case <-w.stopCh:
			debounceTimer.Stop()
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
			pending = true
			debounceTimer.Reset(w.debounce)

		case <-debounceTimer.C:
			if pending {
				pending = false
				w.onChange(w.path)
			}

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
		}
	}
}

// ReadTheme reads tui.theme from the config file at path without touching
// the global configuration. A file that does not set a theme yields the
// default.
func ReadTheme(path string) (string, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault("tui.theme", Default().TUI.Theme)
	if err := v.ReadInConfig(); err != nil {
		return "", err
	}
	return v.GetString("tui.theme"), nil
}
