package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"distortion-os/log"

	"github.com/fsnotify/fsnotify"
)

// Watch calls onChange with the reloaded configuration every time the config
// file is written, until ctx is done. Broken edits are logged and skipped so
// a half-saved file never replaces a working configuration.
func Watch(ctx context.Context, onChange func(*Config)) error {
	dir, err := GetConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}
	return watchDir(ctx, dir, onChange)
}

func watchDir(ctx context.Context, dir string, onChange func(*Config)) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create config watcher: %w", err)
	}
	// Watch the directory: editors replace the file rather than write it.
	if err := w.Add(dir); err != nil {
		w.Close()
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	path := filepath.Clean(filepath.Join(dir, ConfigFileName))
	go func() {
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != path || !ev.Has(fsnotify.Write|fsnotify.Create) {
					continue
				}
				cfg, err := readConfig(path)
				if err != nil {
					log.WarningLog.Printf("ignoring config change: %v", err)
					continue
				}
				onChange(cfg)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.WarningLog.Printf("config watcher: %v", err)
			}
		}
	}()
	return nil
}

// readConfig reads and parses path, applying environment overrides.
func readConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, err
	}
	applyEnv(cfg)
	return cfg, nil
}
