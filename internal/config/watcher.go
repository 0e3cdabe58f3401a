package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/itarato/gomqlet/internal/schema"
)

// SchemaWatcher watches a single introspection JSON file on disk and
// re-loads it into a fresh *schema.Schema whenever it changes, the same
// construct/Start(ctx)/Close shape as the teacher's dev.FileWatcher, cut
// down from directory-tree watching to a single path since the schema
// cache is one file.
type SchemaWatcher struct {
	watcher  *fsnotify.Watcher
	path     string
	onChange func(*schema.Schema, error)
}

// NewSchemaWatcher creates a watcher for path; call Start to begin
// delivering change events.
func NewSchemaWatcher(path string, onChange func(*schema.Schema, error)) (*SchemaWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: creating file watcher: %w", err)
	}

	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("config: watching directory %s: %w", dir, err)
	}

	return &SchemaWatcher{watcher: watcher, path: path, onChange: onChange}, nil
}

// Start blocks, delivering a reload to onChange every time the watched
// file is written or created, until ctx is cancelled. Events for any
// other file in the same directory are ignored.
func (w *SchemaWatcher) Start(ctx context.Context) error {
	absPath, err := filepath.Abs(w.path)
	if err != nil {
		return fmt.Errorf("config: resolving schema path: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("config: watcher event channel closed")
			}

			eventPath, err := filepath.Abs(event.Name)
			if err != nil || eventPath != absPath {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			sch, err := w.reload()
			w.onChange(sch, err)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("config: watcher error channel closed")
			}
			w.onChange(nil, fmt.Errorf("config: watcher error: %w", err))
		}
	}
}

func (w *SchemaWatcher) reload() (*schema.Schema, error) {
	data, err := os.ReadFile(w.path)
	if err != nil {
		return nil, fmt.Errorf("config: reading schema file: %w", err)
	}
	return schema.FromIntrospection(data)
}

// Close stops the underlying fsnotify watcher.
func (w *SchemaWatcher) Close() error {
	return w.watcher.Close()
}
