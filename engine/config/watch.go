package config

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/dannisliang/hydrogen/engine/core"
)

/**
 * @brief Watches a config file and reloads it on change, so a host can
 * retune the combiner (log level, queue sizing) without restarting.
 * Changes to settings already captured by running passes do not apply
 * retroactively.
 */
type Watcher struct {
	path     string
	onChange func(*Config)
	fsnotify *fsnotify.Watcher
	done     chan struct{}
}

func NewWatcher(path string, onChange func(*Config)) (*Watcher, error) {
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		path:     path,
		onChange: onChange,
		fsnotify: fsWatch,
		done:     make(chan struct{}),
	}

	// Watch the directory: editors often replace the file, which drops a
	// watch registered on the file itself.
	if err := fsWatch.Add(filepath.Dir(path)); err != nil {
		fsWatch.Close()
		return nil, err
	}

	go w.start()
	return w, nil
}

func (w *Watcher) start() {
	for {
		select {
		case event, ok := <-w.fsnotify.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			cfg, err := Load(w.path)
			if err != nil {
				core.LogWarn("config reload skipped: %s", err.Error())
				continue
			}
			core.LogInfo("config reloaded from %s", w.path)
			if w.onChange != nil {
				w.onChange(cfg)
			}
		case err, ok := <-w.fsnotify.Errors:
			if !ok {
				return
			}
			core.LogError("config watcher: %s", err.Error())
		case <-w.done:
			return
		}
	}
}

func (w *Watcher) Close() error {
	close(w.done)
	return w.fsnotify.Close()
}
