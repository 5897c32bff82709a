package app

import (
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
)

// watcher reports changes to a fixed set of files. Directories are watched
// so editors that replace files on save are still seen.
type watcher struct {
	*fsnotify.Watcher
	files map[string]bool
	log   *slog.Logger
}

func newWatcher(log *slog.Logger, paths ...string) (*watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "new watcher")
	}
	w := &watcher{Watcher: fw, files: make(map[string]bool), log: log}
	dirs := make(map[string]bool)
	for _, p := range paths {
		if p == "" {
			continue
		}
		abs, err := filepath.Abs(p)
		if err != nil {
			fw.Close()
			return nil, errors.Wrapf(err, "watch %s", p)
		}
		w.files[abs] = true
		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		if err := fw.Add(dir); err != nil {
			fw.Close()
			return nil, errors.Wrapf(err, "watch %s", dir)
		}
		dirs[dir] = true
	}
	return w, nil
}

// changed drains pending events without blocking and reports whether any
// watched file was written, created or renamed.
func (w *watcher) changed() (ok bool) {
	for {
		select {
		case ev, more := <-w.Events:
			if !more {
				return ok
			}
			name, err := filepath.Abs(ev.Name)
			if err != nil || !w.files[name] {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				w.log.Debug("shader changed", "file", name, "op", ev.Op.String())
				ok = true
			}
		case err, more := <-w.Errors:
			if !more {
				return ok
			}
			w.log.Warn("watch", "err", err)
		default:
			return ok
		}
	}
}
