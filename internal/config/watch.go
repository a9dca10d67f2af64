package config

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a config file whenever it changes on disk.
// Editors often replace files instead of writing them in place, so the
// parent directory is watched and events are filtered by name.
type Watcher struct {
	path    string
	fw      *fsnotify.Watcher
	updates chan FlappyConfig
	errors  chan error
	done    chan struct{}
}

// WatchFlappy starts watching path. Only configs that parse and validate
// are delivered on Updates; everything else goes to Errors.
func WatchFlappy(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: cannot resolve %s: %w", path, err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: cannot create watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("config: cannot watch %s: %w", abs, err)
	}

	w := &Watcher{
		path:    abs,
		fw:      fw,
		updates: make(chan FlappyConfig, 1),
		errors:  make(chan error, 1),
		done:    make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Updates delivers each successfully reloaded config.
func (w *Watcher) Updates() <-chan FlappyConfig {
	return w.updates
}

// Errors delivers reload failures.
func (w *Watcher) Errors() <-chan error {
	return w.errors
}

// Close stops the watcher. Both channels are closed afterwards.
func (w *Watcher) Close() error {
	err := w.fw.Close()
	<-w.done
	return err
}

func (w *Watcher) loop() {
	defer close(w.done)
	defer close(w.updates)
	defer close(w.errors)

	for {
		select {
		case event, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			// A save that renames a temp file over path arrives as Create.
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			cfg, err := loadFile(w.path)
			if err == nil {
				err = cfg.Validate()
			}
			if err != nil {
				w.send(nil, err)
				continue
			}
			w.send(&cfg, nil)
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			w.send(nil, err)
		}
	}
}

// send delivers without blocking the event loop; a newer config replaces
// one that was never picked up.
func (w *Watcher) send(cfg *FlappyConfig, err error) {
	if cfg != nil {
		select {
		case <-w.updates:
		default:
		}
		w.updates <- *cfg
		return
	}
	select {
	case w.errors <- err:
	default:
	}
}
