package app

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/Gobd/apidocopenapi/apidoc"
	"github.com/fsnotify/fsnotify"
)

// settle is how long the input must stay unchanged before a rebuild. apiDoc
// writes both files in quick succession.
const settle = 200 * time.Millisecond

// watch rebuilds the document whenever one of the input files is written.
// Build failures are logged and the previous document is kept.
func (a *App) watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(a.cfg.Src); err != nil {
		return fmt.Errorf("failed to watch %s: %w", a.cfg.Src, err)
	}
	a.log.Infof("Watching %s for changes", a.cfg.Src)

	timer := time.NewTimer(settle)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isInput(event) {
				continue
			}
			a.log.Debugf("modified file: %s", event.Name)
			timer.Reset(settle)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			a.log.Warnf("watch error: %v", err)
		case <-timer.C:
			if err := a.Build(); err != nil {
				a.log.Errorf("rebuild failed: %v", err)
			}
		}
	}
}

func isInput(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return false
	}
	switch filepath.Base(event.Name) {
	case apidoc.DataFile, apidoc.ProjectFile:
		return true
	}
	return false
}
