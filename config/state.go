package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"distortion-os/log"
)

const StateFileName = "state.json"

// AppState handles application-level state
type AppState interface {
	// GetTutorialComplete reports whether the assistant tour was finished.
	GetTutorialComplete() bool
	// SetTutorialComplete records the end of the assistant tour.
	SetTutorialComplete(done bool) error
	// GetLastLanguage returns the language picked in the last session.
	GetLastLanguage() string
	// SetLastLanguage records the language picked by the user.
	SetLastLanguage(lang string) error
}

// State represents the application state that persists between sessions
type State struct {
	TutorialComplete bool   `json:"tutorial_complete"`
	LastLanguage     string `json:"last_language,omitempty"`

	// dir is where the state is saved. Empty means the config directory.
	dir string
}

// DefaultState returns the default state
func DefaultState() *State {
	return &State{}
}

func (s *State) stateDir() (string, error) {
	if s.dir != "" {
		return s.dir, nil
	}
	return GetConfigDir()
}

// LoadState loads the state from disk. If it cannot be done, we return the default state.
// This function acquires a shared lock to allow concurrent reads.
func LoadState() *State {
	configDir, err := GetConfigDir()
	if err != nil {
		log.ErrorLog.Printf("failed to get config directory: %v", err)
		return DefaultState()
	}
	return loadStateFrom(configDir)
}

func loadStateFrom(dir string) *State {
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.WarningLog.Printf("failed to create state directory: %v", err)
		return &State{dir: dir}
	}

	// Acquire shared lock for reading
	lock := NewFileLock(dir)
	if err := lock.RLock(); err != nil {
		log.WarningLog.Printf("failed to acquire read lock: %v", err)
		// Continue without lock - better to have stale data than fail
	} else {
		defer lock.Unlock()
	}

	data, err := os.ReadFile(filepath.Join(dir, StateFileName))
	if err != nil {
		if !os.IsNotExist(err) {
			log.WarningLog.Printf("failed to get state file: %v", err)
		}
		return &State{dir: dir}
	}

	state := State{dir: dir}
	if err := json.Unmarshal(data, &state); err != nil {
		log.ErrorLog.Printf("failed to parse state file: %v", err)
		return &State{dir: dir}
	}
	return &state
}

// SaveState saves the state to disk.
// This function acquires an exclusive lock to prevent concurrent writes.
func SaveState(state *State) error {
	dir, err := state.stateDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Acquire exclusive lock for writing
	lock := NewFileLock(dir)
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("failed to acquire write lock: %w", err)
	}
	defer lock.Unlock()

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	// Replace the state file in one rename.
	tmp := filepath.Join(dir, StateFileName+".tmp")
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write state: %w", err)
	}
	if err := os.Rename(tmp, filepath.Join(dir, StateFileName)); err != nil {
		return fmt.Errorf("failed to replace state: %w", err)
	}
	return nil
}

// ResetState discards the persisted state.
func ResetState() error {
	return SaveState(DefaultState())
}

// GetTutorialComplete reports whether the assistant tour was finished.
func (s *State) GetTutorialComplete() bool {
	return s.TutorialComplete
}

// SetTutorialComplete records the end of the assistant tour.
func (s *State) SetTutorialComplete(done bool) error {
	s.TutorialComplete = done
	return SaveState(s)
}

// GetLastLanguage returns the language picked in the last session.
func (s *State) GetLastLanguage() string {
	return s.LastLanguage
}

// SetLastLanguage records the language picked by the user.
func (s *State) SetLastLanguage(lang string) error {
	s.LastLanguage = lang
	return SaveState(s)
}
