package config

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
)

// Store holds the live configuration. Readers always see the most recently
// loaded value, so a prefix change is picked up by the next table sync.
type Store struct {
	cur atomic.Pointer[Config]
}

// NewStore returns a Store holding cfg.
func NewStore(cfg *Config) *Store {
	s := &Store{}
	s.cur.Store(cfg)
	return s
}

// Current returns the active configuration.
func (s *Store) Current() *Config { return s.cur.Load() }

// Set replaces the active configuration.
func (s *Store) Set(cfg *Config) { s.cur.Store(cfg) }

// Prefix returns the table prefix of the active configuration.
func (s *Store) Prefix() string {
	cfg := s.cur.Load()
	if cfg == nil {
		return ""
	}
	return cfg.Database.TablePrefix()
}

// Watch reloads path into s whenever the file changes, until ctx is done.
// A file that fails to load is logged and the previous configuration kept.
func Watch(ctx context.Context, s *Store, path string, logger *slog.Logger) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Close() //nolint:errcheck

	// Watch the directory: editors often replace the file instead of writing it.
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", path, err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			cfg, err := Load(path)
			if err != nil {
				logger.Warn("config reload failed", "path", path, "error", err)
				continue
			}
			for _, msg := range cfg.Warnings {
				logger.Warn(msg)
			}
			s.Set(cfg)
			logger.Info("config reloaded", "path", path, "prefix", cfg.Database.TablePrefix())
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("config watcher error", "error", err)
		}
	}
}
