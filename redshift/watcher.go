// Package redshift provides access to redshift's own configuration file and
// launches the redshift binary.
// This file contains the Watcher which reports external edits of redshift.conf.
package redshift

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/yllada/redshift-tray/common"
)

// Watcher reports changes to a single file. It watches the parent directory
// because saves replace the file by rename.
type Watcher struct {
	path     string
	watcher  *fsnotify.Watcher
	onChange func()
}

// NewWatcher starts watching path. onChange runs on the watcher goroutine;
// callers marshal it onto their own event loop.
func NewWatcher(path string, onChange func()) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(path), err)
	}

	return &Watcher{
		path:     filepath.Clean(path),
		watcher:  fw,
		onChange: onChange,
	}, nil
}

// Run delivers change notifications until ctx is done or Close is called.
func (w *Watcher) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if w.relevant(ev) {
				common.LogDebug("%s changed (%s)", w.path, ev.Op)
				w.onChange()
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			common.LogWarn("Config watcher error: %v", err)
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.path {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename)
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
