package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/2008cattiger-cyber/miniature/models"
)

// JSONStore persists the state as a single indented JSON document.
// Writes go to a temp file first and are renamed into place, so a
// concurrent Load never observes a half-written document.
type JSONStore struct {
	path string
	mu   sync.Mutex
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

// Load reads the persisted state. An absent or unparseable file yields
// an empty state: corruption is logged, never surfaced to the caller.
func (s *JSONStore) Load() (models.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("state file unreadable, starting empty", "path", s.path, "error", err)
		}
		return models.NewState(), nil
	}

	var state models.State
	if err := json.Unmarshal(data, &state); err != nil {
		slog.Warn("state file corrupt, starting empty", "path", s.path, "error", err)
		return models.NewState(), nil
	}
	if state.Polls == nil {
		state.Polls = make(map[string]*models.Poll)
	}
	return state, nil
}

// Save serializes the full state with stable key ordering and renames
// it into place.
func (s *JSONStore) Save(state models.State) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create state directory: %w", err)
		}
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write state: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace state file: %w", err)
	}
	return nil
}
