package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// JSONStore keeps the learner state in a single JSON file, the server-side
// equivalent of the browser's local storage blob.
type JSONStore struct {
	filePath string
}

var _ Store = (*JSONStore)(nil)

// NewJSONStore creates a store backed by the given file path. The file is
// not touched until the first Save.
func NewJSONStore(filePath string) *JSONStore {
	return &JSONStore{filePath: filePath}
}

// Load reads the whole state. A missing file yields empty state; an
// unreadable or undecodable file yields empty state plus ErrCorrupt so the
// caller can log it and keep going.
func (s *JSONStore) Load() (State, error) {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return EmptyState(), nil
		}
		return EmptyState(), fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return EmptyState(), fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	normalize(&state)
	return state, nil
}

// Save writes the whole state atomically: marshal, write a temp file,
// rename over the target.
func (s *JSONStore) Save(state State) error {
	if err := os.MkdirAll(filepath.Dir(s.filePath), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}

	tmpPath := s.filePath + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmpPath, s.filePath)
}

func (s *JSONStore) Close() error {
	return nil
}

// normalize replaces nil slices from older files (for example ones written
// before notes existed) with empty ones.
func normalize(state *State) {
	if state.WeakConcepts == nil {
		state.WeakConcepts = EmptyState().WeakConcepts
	}
	if state.ProblemAttempts == nil {
		state.ProblemAttempts = EmptyState().ProblemAttempts
	}
	if state.LabAttempts == nil {
		state.LabAttempts = EmptyState().LabAttempts
	}
	if state.Notes == nil {
		state.Notes = EmptyState().Notes
	}
}
