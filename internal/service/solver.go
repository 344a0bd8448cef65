// internal/service/solver.go
package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/hydrolearn/backend/internal/domain/attempt"
	"github.com/hydrolearn/backend/internal/domain/solver"
	"github.com/hydrolearn/backend/internal/id"
	"github.com/hydrolearn/backend/internal/judge"
)

// SolverService drives guided problem-solving sessions. The platform is
// single-user, so at most one session is live at a time: submitting a new
// problem discards the previous session without writing anything, which is
// how abandonment works.
//
// Concept detection and answer checking sleep for a configured latency to
// emulate the remote evaluator the platform will eventually call.
type SolverService struct {
	learner *LearnerState
	judge   judge.AnswerJudge
	logger  *slog.Logger
	latency time.Duration
	now     func() time.Time

	mu      sync.Mutex
	session *solver.Session
}

// NewSolverService creates a SolverService.
func NewSolverService(learner *LearnerState, j judge.AnswerJudge, logger *slog.Logger, latency time.Duration) *SolverService {
	return &SolverService{
		learner: learner,
		judge:   j,
		logger:  logger,
		latency: latency,
		now:     time.Now,
	}
}

// Detection is the concept-detection step's response.
type Detection struct {
	Concepts []string `json:"concepts"`
	Message  string   `json:"message"`
}

// DetectConcepts starts a new session from problem text, discarding any
// previous one.
func (ss *SolverService) DetectConcepts(ctx context.Context, problem string) (Detection, error) {
	if err := ss.simulateLatency(ctx); err != nil {
		return Detection{}, err
	}

	session := solver.NewSession(problem, ss.now())

	ss.mu.Lock()
	ss.session = session
	ss.mu.Unlock()

	return Detection{
		Concepts: session.Concepts(),
		Message:  solver.DetectionMessage(problem),
	}, nil
}

// ConceptQuestion returns the concept-check question, advancing the live
// session when it matches the problem. Without a matching session the
// question is derived directly from the problem text, mirroring a client
// that kept its own step state.
func (ss *SolverService) ConceptQuestion(problem string) string {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	if s := ss.session; s != nil && s.Problem() == problem && s.State() != solver.StateTerminal {
		question, err := s.AskConceptQuestion()
		if err == nil {
			return question
		}
	}
	return solver.ConceptQuestion(problem)
}

// Hint returns the next rung of the hint ladder. A live session tracks its
// own counter; otherwise the caller-provided count positions the ladder.
// Either way the ladder saturates at its last entry.
func (ss *SolverService) Hint(problem string, hintsUsed int) string {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	if s := ss.session; s != nil && s.Problem() == problem && s.State() != solver.StateTerminal {
		if hint, err := s.RequestHint(); err == nil {
			return hint
		}
	}
	return solver.HintAt(hintsUsed)
}

// CheckAnswer runs the judge and records exactly one ProblemAttempt. With a
// live matching session the attempt carries session-accumulated hints and
// elapsed time; stateless calls fall back to the caller's hint count with
// zero elapsed time. Terminal sessions are absorbing: a repeat answer-check
// for the same problem is treated as a fresh stateless check with no
// session to consume.
//
// The session is claimed under the lock before judging, so concurrent
// answer-checks for the same problem can never submit the same session
// twice: exactly one request owns it, the rest go through the stateless
// path. A failed judgement hands the session back for a retry.
func (ss *SolverService) CheckAnswer(ctx context.Context, problem, userAnswer string, hintsUsed int) (solver.Result, error) {
	if err := ss.simulateLatency(ctx); err != nil {
		return solver.Result{}, err
	}

	session := ss.claimSession(problem)
	if session != nil {
		result, att, err := session.SubmitAnswer(ctx, ss.judge, userAnswer, ss.now())
		if err != nil {
			ss.restoreSession(session)
			return solver.Result{}, err
		}
		ss.learner.AddProblemAttempt(att)
		return result, nil
	}

	return ss.statelessCheck(ctx, problem, userAnswer, hintsUsed)
}

// claimSession detaches the live session when it matches the problem and is
// still open, giving the caller exclusive ownership.
func (ss *SolverService) claimSession(problem string) *solver.Session {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	session := ss.session
	if session == nil || session.Problem() != problem || session.State() == solver.StateTerminal {
		return nil
	}
	ss.session = nil
	return session
}

// restoreSession hands a claimed session back after a failed judgement,
// unless a new session has started in the meantime.
func (ss *SolverService) restoreSession(session *solver.Session) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	if ss.session == nil {
		ss.session = session
	}
}

func (ss *SolverService) statelessCheck(ctx context.Context, problem, userAnswer string, hintsUsed int) (solver.Result, error) {
	question := solver.ConceptQuestion(problem)
	correct, err := ss.judge.Judge(ctx, question, userAnswer)
	if err != nil {
		return solver.Result{}, err
	}

	now := ss.now()
	ss.learner.AddProblemAttempt(attempt.ProblemAttempt{
		ProblemID: id.GenerateID(),
		Concept:   solver.DetectConcepts(problem)[0],
		HintsUsed: hintsUsed,
		Correct:   correct,
		TimeSpent: 0,
		Timestamp: now,
	})

	result := solver.Result{Correct: correct, Feedback: solver.CorrectFeedback(), Suggestions: []string{}}
	if !correct {
		result.Feedback = solver.WrongFeedback()
		result.Suggestions = solver.WrongAnswerSuggestions()
	}
	return result, nil
}

func (ss *SolverService) simulateLatency(ctx context.Context) error {
	if ss.latency <= 0 {
		return nil
	}
	timer := time.NewTimer(ss.latency)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
