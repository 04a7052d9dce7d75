// Package inspect exposes the desktop state to scripts. With DOS_INSPECT=1
// the desktop writes a JSON snapshot after every update; `distortion-os
// inspect` prints the latest one.
package inspect

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

var (
	enabled     bool
	enabledOnce sync.Once
)

// IsEnabled reports whether DOS_INSPECT=1 was set at startup.
func IsEnabled() bool {
	enabledOnce.Do(func() {
		enabled = os.Getenv("DOS_INSPECT") == "1"
	})
	return enabled
}

// Path is where snapshots are written. DOS_INSPECT_FILE overrides the
// default in the temp dir.
func Path() string {
	if p := os.Getenv("DOS_INSPECT_FILE"); p != "" {
		return p
	}
	return filepath.Join(os.TempDir(), "distortion-os-inspect.json")
}

// WriteSnapshot writes s to Path when inspection is enabled.
func WriteSnapshot(s *Snapshot) error {
	if !IsEnabled() {
		return nil
	}
	return WriteSnapshotToPath(s, Path())
}

// WriteSnapshotToPath writes s to path. Readers never see a partial file.
func WriteSnapshotToPath(s *Snapshot, path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to replace snapshot: %w", err)
	}
	return nil
}

// ReadSnapshot loads a snapshot written by WriteSnapshotToPath.
func ReadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot %s: %w", path, err)
	}
	return &s, nil
}
