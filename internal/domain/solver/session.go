package solver

import (
	"context"
	"errors"
	"time"

	"github.com/hydrolearn/backend/internal/domain/attempt"
	"github.com/hydrolearn/backend/internal/id"
	"github.com/hydrolearn/backend/internal/judge"
)

// State is the guided problem-solver's position in its step sequence.
type State string

const (
	StateConceptDetected       State = "concept-detected"
	StateAwaitingConceptAnswer State = "awaiting-concept-answer"
	StateTerminal              State = "terminal"
)

// ErrSessionTerminal is returned for hint requests or re-submissions after
// the session reached its terminal state. Terminal is absorbing; starting a
// new problem is the only way forward.
var ErrSessionTerminal = errors.New("session already completed")

// Result is the outcome of a terminal answer check.
type Result struct {
	Correct     bool     `json:"correct"`
	Feedback    string   `json:"feedback"`
	Suggestions []string `json:"suggestions"`
}

const (
	feedbackCorrect = "Great job! Your answer is correct. You've shown good understanding of the concepts."
	feedbackWrong   = "Your answer needs some work. Let's review: Check your units, verify your calculations, and ensure you've applied the correct formula."
)

var wrongAnswerSuggestions = []string{
	"Verify your units match the question requirements",
	"Check if you converted all values to consistent units",
	"Review the formula you used",
	"Ensure significant figures are correct",
}

// CorrectFeedback is the fixed message for an accepted answer.
func CorrectFeedback() string { return feedbackCorrect }

// WrongFeedback is the fixed message for a rejected answer.
func WrongFeedback() string { return feedbackWrong }

// WrongAnswerSuggestions returns the fixed remediation suggestions shown
// with a rejected answer.
func WrongAnswerSuggestions() []string {
	return append([]string{}, wrongAnswerSuggestions...)
}

// Session is one in-memory guided problem-solving interaction. It is owned
// by the active interaction, has no persisted identity, and emits exactly
// one ProblemAttempt, at most once, when the terminal step is reached.
// Abandoning a session at any non-terminal state writes nothing.
type Session struct {
	problemID string
	problem   string
	concepts  []string
	question  string
	state     State
	hintsUsed int
	startedAt time.Time
}

// NewSession starts a session from submitted problem text. Concept
// detection happens here; the session begins in StateConceptDetected.
func NewSession(problem string, now time.Time) *Session {
	return &Session{
		problemID: id.GenerateID(),
		problem:   problem,
		concepts:  DetectConcepts(problem),
		state:     StateConceptDetected,
		startedAt: now,
	}
}

// Problem returns the submitted problem text.
func (s *Session) Problem() string { return s.problem }

// Concepts returns the concepts detected from the problem text.
func (s *Session) Concepts() []string { return s.concepts }

// PrimaryConcept is the concept the eventual attempt is recorded under.
// The remaining detected concepts are informational only.
func (s *Session) PrimaryConcept() string { return s.concepts[0] }

// State returns the session's current state.
func (s *Session) State() State { return s.state }

// HintsUsed returns the accumulated hint count.
func (s *Session) HintsUsed() int { return s.hintsUsed }

// AskConceptQuestion moves the session to awaiting-answer and returns the
// fixed concept-check question for the problem.
func (s *Session) AskConceptQuestion() (string, error) {
	if s.state == StateTerminal {
		return "", ErrSessionTerminal
	}
	s.question = ConceptQuestion(s.problem)
	s.state = StateAwaitingConceptAnswer
	return s.question, nil
}

// RequestHint increments the hint counter and returns the next rung of the
// hint ladder, saturating at the last entry.
func (s *Session) RequestHint() (string, error) {
	if s.state == StateTerminal {
		return "", ErrSessionTerminal
	}
	hint := HintAt(s.hintsUsed)
	s.hintsUsed++
	return hint, nil
}

// SubmitAnswer runs the injected judge, transitions to the terminal state,
// and emits the session's single ProblemAttempt. The attempt carries the
// primary concept, the accumulated hint count, and wall time elapsed since
// the session started.
func (s *Session) SubmitAnswer(ctx context.Context, j judge.AnswerJudge, userAnswer string, now time.Time) (Result, attempt.ProblemAttempt, error) {
	if s.state == StateTerminal {
		return Result{}, attempt.ProblemAttempt{}, ErrSessionTerminal
	}

	question := s.question
	if question == "" {
		question = ConceptQuestion(s.problem)
	}

	correct, err := j.Judge(ctx, question, userAnswer)
	if err != nil {
		return Result{}, attempt.ProblemAttempt{}, err
	}

	s.state = StateTerminal

	result := Result{
		Correct:     correct,
		Feedback:    feedbackCorrect,
		Suggestions: []string{},
	}
	if !correct {
		result.Feedback = feedbackWrong
		result.Suggestions = append(result.Suggestions, wrongAnswerSuggestions...)
	}

	att := attempt.ProblemAttempt{
		ProblemID: s.problemID,
		Concept:   s.PrimaryConcept(),
		HintsUsed: s.hintsUsed,
		Correct:   correct,
		TimeSpent: now.Sub(s.startedAt).Seconds(),
		Timestamp: now,
	}
	return result, att, nil
}
