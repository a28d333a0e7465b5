package main

import (
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

// snapshotWatcher reports changes to the snapshot file.
type snapshotWatcher struct {
	w    *fsnotify.Watcher
	name string
}

type (
	snapshotChangedMsg struct{}
	watchErrMsg        struct{ err error }
)

// newSnapshotWatcher watches the directory holding path. Exporters usually
// replace the file with a rename, which drops a watch on the file itself.
func newSnapshotWatcher(path string) (*snapshotWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		w.Close()
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}
	return &snapshotWatcher{w: w, name: abs}, nil
}

// next blocks until the snapshot is written or created. It returns nil once
// the watcher is closed.
func (s *snapshotWatcher) next() tea.Cmd {
	return func() tea.Msg {
		for {
			select {
			case ev, ok := <-s.w.Events:
				if !ok {
					return nil
				}
				if filepath.Clean(ev.Name) != s.name {
					continue
				}
				if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
					return snapshotChangedMsg{}
				}
			case err, ok := <-s.w.Errors:
				if !ok {
					return nil
				}
				return watchErrMsg{err}
			}
		}
	}
}

func (s *snapshotWatcher) Close() error {
	return s.w.Close()
}
