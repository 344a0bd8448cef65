package store

import (
	"errors"

	"github.com/hydrolearn/backend/internal/domain/attempt"
	"github.com/hydrolearn/backend/internal/domain/mastery"
	"github.com/hydrolearn/backend/internal/domain/note"
)

// ErrCorrupt is returned by Load when persisted state cannot be decoded.
// Callers treat it as empty state; it is never fatal.
var ErrCorrupt = errors.New("persisted state is corrupt")

// State is the complete persisted learner state. It is loaded wholesale on
// startup and written wholesale after every mutation.
type State struct {
	DarkMode        bool                     `json:"darkMode"`
	WeakConcepts    []mastery.WeakConcept    `json:"weakConcepts"`
	ProblemAttempts []attempt.ProblemAttempt `json:"problemAttempts"`
	LabAttempts     []attempt.LabAttempt     `json:"labAttempts"`
	Notes           []note.Note              `json:"notes"`
}

// EmptyState returns a State with allocated (not nil) slices so JSON
// round-trips stay stable.
func EmptyState() State {
	return State{
		WeakConcepts:    []mastery.WeakConcept{},
		ProblemAttempts: []attempt.ProblemAttempt{},
		LabAttempts:     []attempt.LabAttempt{},
		Notes:           []note.Note{},
	}
}

// Store persists the learner state. Implementations must make Load on a
// missing backing file return empty state rather than an error.
type Store interface {
	Load() (State, error)
	Save(State) error
	Close() error
}
