// internal/service/learner_state.go
package service

import (
	"log/slog"
	"sync"
	"time"

	"github.com/hydrolearn/backend/internal/domain/attempt"
	"github.com/hydrolearn/backend/internal/domain/mastery"
	"github.com/hydrolearn/backend/internal/domain/note"
	"github.com/hydrolearn/backend/internal/id"
	"github.com/hydrolearn/backend/internal/store"
)

// weakConceptLimit is how many of the weakest concepts the dashboard's
// remediation list shows.
const weakConceptLimit = 5

// LearnerState owns the attempt log and everything derived from it. Every
// mutation runs to completion under the lock, recomputes derived state over
// the full log, and ends with one persistence write. A failed write is
// logged and otherwise ignored: the in-memory state stays authoritative for
// the session.
type LearnerState struct {
	store  store.Store
	logger *slog.Logger
	now    func() time.Time

	mu    sync.Mutex
	state store.State
}

// NewLearnerState loads persisted state through the given store. Absent or
// corrupt storage starts the session empty; it is never fatal.
func NewLearnerState(s store.Store, logger *slog.Logger) *LearnerState {
	state, err := s.Load()
	if err != nil {
		logger.Warn("failed to load learner state, starting empty", "error", err)
		state = store.EmptyState()
	}
	return &LearnerState{
		store:  s,
		logger: logger,
		now:    time.Now,
		state:  state,
	}
}

// AddProblemAttempt appends to the attempt log, recomputes the full
// weak-concept mapping, and persists.
func (ls *LearnerState) AddProblemAttempt(a attempt.ProblemAttempt) {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	ls.state.ProblemAttempts = append(ls.state.ProblemAttempts, a)
	ls.state.WeakConcepts = mastery.Estimate(ls.state.ProblemAttempts, ls.now())
	ls.persistLocked()
}

// AddLabAttempt appends a completed lab run and persists.
func (ls *LearnerState) AddLabAttempt(a attempt.LabAttempt) {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	ls.state.LabAttempts = append(ls.state.LabAttempts, a)
	ls.persistLocked()
}

// ToggleDarkMode flips the flag, persists, and returns the new value.
func (ls *LearnerState) ToggleDarkMode() bool {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	ls.state.DarkMode = !ls.state.DarkMode
	ls.persistLocked()
	return ls.state.DarkMode
}

// SaveNote stores a teach-back note the caller chose to keep. The note
// carries the evaluation's overall score and detected concepts; the full
// evaluation is not persisted.
func (ls *LearnerState) SaveNote(title, content string, eval note.Evaluation) note.Note {
	concepts := []string{}
	for _, node := range eval.ConceptMap {
		concepts = append(concepts, node.Concept)
	}
	n := note.Note{
		ID:           id.GenerateID(),
		Title:        title,
		Content:      content,
		QualityScore: eval.OverallScore,
		Concepts:     concepts,
		Timestamp:    ls.now(),
	}

	ls.mu.Lock()
	defer ls.mu.Unlock()
	ls.state.Notes = append(ls.state.Notes, n)
	ls.persistLocked()
	return n
}

// Notes returns the saved teach-back notes.
func (ls *LearnerState) Notes() []note.Note {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	out := make([]note.Note, len(ls.state.Notes))
	copy(out, ls.state.Notes)
	return out
}

// Snapshot returns a copy of the full persisted state.
func (ls *LearnerState) Snapshot() store.State {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	return copyState(ls.state)
}

// WeakestConcepts returns the remediation list: the five lowest-strength
// concepts, ties kept in log order.
func (ls *LearnerState) WeakestConcepts() []mastery.WeakConcept {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	return mastery.Weakest(ls.state.WeakConcepts, weakConceptLimit)
}

// Progress summarizes the attempt log for the dashboard.
type Progress struct {
	TotalProblems   int     `json:"totalProblems"`
	CorrectProblems int     `json:"correctProblems"`
	AccuracyPercent float64 `json:"accuracyPercent"`
	AvgHints        float64 `json:"avgHints"`
	AvgTimeSeconds  float64 `json:"avgTimeSeconds"`
	LabAttempts     int     `json:"labAttempts"`
}

// Progress computes the dashboard stats from the current log.
func (ls *LearnerState) Progress() Progress {
	ls.mu.Lock()
	defer ls.mu.Unlock()

	p := Progress{
		TotalProblems: len(ls.state.ProblemAttempts),
		LabAttempts:   len(ls.state.LabAttempts),
	}

	var hints int
	var timeSpent float64
	for _, a := range ls.state.ProblemAttempts {
		if a.Correct {
			p.CorrectProblems++
		}
		hints += a.HintsUsed
		timeSpent += a.TimeSpent
	}
	if p.TotalProblems > 0 {
		p.AccuracyPercent = float64(p.CorrectProblems) / float64(p.TotalProblems) * 100
		p.AvgHints = float64(hints) / float64(p.TotalProblems)
		p.AvgTimeSeconds = timeSpent / float64(p.TotalProblems)
	}
	return p
}

// persistLocked writes the whole state. Persistence failures never
// propagate: the write is best-effort and retried on the next mutation.
func (ls *LearnerState) persistLocked() {
	if err := ls.store.Save(ls.state); err != nil {
		ls.logger.Error("failed to persist learner state", "error", err)
	}
}

func copyState(s store.State) store.State {
	out := s
	out.WeakConcepts = append([]mastery.WeakConcept{}, s.WeakConcepts...)
	out.ProblemAttempts = append([]attempt.ProblemAttempt{}, s.ProblemAttempts...)
	out.LabAttempts = append([]attempt.LabAttempt{}, s.LabAttempts...)
	out.Notes = append([]note.Note{}, s.Notes...)
	return out
}
