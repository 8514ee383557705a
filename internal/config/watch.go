package config

import (
	"github.com/csscript/gocs/internal/config/notify"
	"github.com/csscript/gocs/internal/config/watcher"
)

// StartWatch reloads settings from path whenever the file changes on
// disk and hands the fresh instance to onReload. The previous
// instance's notifier, if any, is carried over to the fresh instance
// and receives a reload event. The returned watcher must be closed by
// the caller.
//
// Reloads run on the watcher goroutine; onReload must do its own
// synchronization when swapping the live instance.
func StartWatch(path string, n *notify.Notifier, onReload func(*Settings)) (*watcher.Watcher, error) {
	w, err := watcher.New(path, func(p string) {
		s := Load(p)
		if s == nil {
			// File deleted or momentarily unreadable; keep the current
			// settings until the next change.
			return
		}
		s.Bind(n)
		onReload(s)
		if n != nil {
			n.NotifyReload()
		}
	})
	if err != nil {
		return nil, err
	}
	if err := w.Start(); err != nil {
		w.Close()
		return nil, err
	}
	return w, nil
}
