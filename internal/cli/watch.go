package cli

import (
	"context"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// stateChangedMsg tells the editor model the state file changed on disk.
type stateChangedMsg struct{}

// watchFile signals on the returned channel whenever path is written,
// created or replaced. The parent directory is watched so atomic renames are
// seen. Signals coalesce: at most one is pending at a time.
func watchFile(ctx context.Context, path string, logger *log.Logger) (<-chan struct{}, func() error, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, nil, err
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		w.Close()
		return nil, nil, err
	}

	path = filepath.Clean(path)
	changes := make(chan struct{}, 1)
	go func() {
		defer close(changes)
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != path {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				select {
				case changes <- struct{}{}:
				default:
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				logger.Debug("watch error", "path", path, "err", err)
			}
		}
	}()
	return changes, w.Close, nil
}

// waitForChange blocks until the next change signal. A nil channel never
// fires.
func waitForChange(changes <-chan struct{}) tea.Cmd {
	if changes == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return stateChangedMsg{}
	}
}
