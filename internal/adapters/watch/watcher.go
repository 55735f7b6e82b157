package watch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	toml "github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
)

// Watcher observes the session file for changes made by another process. When
// the auth token disappears there, it invokes onClear — which must funnel into
// the session store's own Logout so external signals cannot bypass the state
// machine.
type Watcher struct {
	path    string
	onClear func()
	logger  *zap.Logger
}

func New(path string, onClear func(), logger *zap.Logger) *Watcher {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Watcher{path: filepath.Clean(path), onClear: onClear, logger: logger}
}

// Run blocks until ctx is done. The parent directory is watched rather than
// the file itself so atomic rename replaces are observed.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create file watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("watch session directory: %w", err)
	}

	cleared := !w.tokenPresent()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}

			if w.tokenPresent() {
				cleared = false
				continue
			}
			if cleared {
				continue
			}

			cleared = true
			w.logger.Debug("session token cleared externally", zap.String("path", w.path))
			w.onClear()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Debug("session watch error", zap.Error(err))
		}
	}
}

func (w *Watcher) tokenPresent() bool {
	data, err := os.ReadFile(w.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			w.logger.Debug("read session file", zap.Error(err))
		}
		return false
	}

	var file struct {
		AuthToken string `toml:"auth_token"`
	}
	if err := toml.Unmarshal(data, &file); err != nil {
		w.logger.Debug("decode session file", zap.Error(err))
		return false
	}

	return file.AuthToken != ""
}
