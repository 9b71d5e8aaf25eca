// Package file is the default Store driver: one JSON document per key in a
// flat directory. It is the closest analogue of the browser-local substrate
// the storefront originally persisted into. Writes are last-write-wins; a
// directory watcher surfaces writes made by other processes, playing the role
// of the best-effort cross-tab storage event.
package file

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/nadanruchi/storefront/internal/adapter/logger"
)

const suffix = ".json"

type Store struct {
	dir     string
	log     logger.Logger
	watcher *fsnotify.Watcher
	changes chan string
}

func New(dir string, log logger.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	s := &Store{
		dir:     dir,
		log:     log,
		changes: make(chan string, 16),
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		// The store still works without external-change events.
		log.Error("watch_unavailable", "File watcher could not be created", "", nil, err)
		return s, nil
	}
	if err := watcher.Add(dir); err != nil {
		log.Error("watch_unavailable", "File watcher could not observe storage directory", "", nil, err)
		watcher.Close()
		return s, nil
	}

	s.watcher = watcher
	go s.watchLoop()
	return s, nil
}

func (s *Store) Get(_ context.Context, key string) ([]byte, bool, error) {
	data, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read key %s: %w", key, err)
	}
	return data, true, nil
}

func (s *Store) Set(_ context.Context, key string, value []byte) error {
	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, value, 0o644); err != nil {
		return fmt.Errorf("failed to write key %s: %w", key, err)
	}
	if err := os.Rename(tmp, s.path(key)); err != nil {
		return fmt.Errorf("failed to write key %s: %w", key, err)
	}
	return nil
}

func (s *Store) Remove(_ context.Context, key string) error {
	err := os.Remove(s.path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove key %s: %w", key, err)
	}
	return nil
}

func (s *Store) Keys(_ context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list storage directory: %w", err)
	}

	var keys []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, suffix) {
			continue
		}
		key, err := url.QueryUnescape(strings.TrimSuffix(name, suffix))
		if err != nil {
			continue
		}
		keys = append(keys, key)
	}
	return keys, nil
}

// Changes emits keys written by anyone touching the directory, this process
// included. Consumers re-fetch on receipt, so the extra self-notifications
// are harmless.
func (s *Store) Changes() <-chan string {
	return s.changes
}

func (s *Store) Close() error {
	if s.watcher != nil {
		return s.watcher.Close()
	}
	return nil
}

func (s *Store) watchLoop() {
	for {
		select {
		case event, ok := <-s.watcher.Events:
			if !ok {
				close(s.changes)
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Remove) {
				continue
			}
			name := filepath.Base(event.Name)
			if !strings.HasSuffix(name, suffix) {
				continue
			}
			key, err := url.QueryUnescape(strings.TrimSuffix(name, suffix))
			if err != nil {
				continue
			}
			select {
			case s.changes <- key:
			default:
				// Slow consumer; dropping is fine for a best-effort signal.
			}
		case err, ok := <-s.watcher.Errors:
			if !ok {
				close(s.changes)
				return
			}
			s.log.Error("watch_error", "File watcher error", "", nil, err)
		}
	}
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, url.QueryEscape(key)+suffix)
}
