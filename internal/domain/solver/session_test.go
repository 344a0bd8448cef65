package solver_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hydrolearn/backend/internal/domain/solver"
)

// stubJudge returns a fixed verdict and records the question it was asked.
type stubJudge struct {
	verdict      bool
	err          error
	lastQuestion string
}

func (s *stubJudge) Judge(_ context.Context, question, _ string) (bool, error) {
	s.lastQuestion = question
	return s.verdict, s.err
}

func TestNewSession_DetectsConcepts(t *testing.T) {
	session := solver.NewSession("calculate the hardness of a water sample", time.Now())

	if session.State() != solver.StateConceptDetected {
		t.Errorf("expected concept-detected state, got %s", session.State())
	}
	if session.PrimaryConcept() != "Hardness" {
		t.Errorf("expected primary concept Hardness, got %s", session.PrimaryConcept())
	}
	if session.HintsUsed() != 0 {
		t.Errorf("expected 0 hints, got %d", session.HintsUsed())
	}
}

func TestAskConceptQuestion_Transitions(t *testing.T) {
	session := solver.NewSession("hardness problem", time.Now())

	q, err := session.AskConceptQuestion()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q == "" {
		t.Error("expected a question")
	}
	if session.State() != solver.StateAwaitingConceptAnswer {
		t.Errorf("expected awaiting-concept-answer, got %s", session.State())
	}
}

func TestRequestHint_WalksLadderAndSaturates(t *testing.T) {
	session := solver.NewSession("hardness problem", time.Now())

	var hints []string
	for i := 0; i < 10; i++ {
		h, err := session.RequestHint()
		if err != nil {
			t.Fatalf("hint %d: unexpected error: %v", i, err)
		}
		hints = append(hints, h)
	}

	if session.HintsUsed() != 10 {
		t.Errorf("expected 10 hints counted, got %d", session.HintsUsed())
	}
	// The first five rungs are distinct; everything after repeats the last.
	last := hints[solver.HintCount()-1]
	for i := solver.HintCount(); i < 10; i++ {
		if hints[i] != last {
			t.Errorf("hint %d: expected saturation at %q, got %q", i, last, hints[i])
		}
	}
}

func TestSubmitAnswer_CorrectOutcome(t *testing.T) {
	start := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	session := solver.NewSession("hardness problem", start)
	session.AskConceptQuestion()
	session.RequestHint()
	session.RequestHint()

	j := &stubJudge{verdict: true}
	end := start.Add(90 * time.Second)
	result, att, err := session.SubmitAnswer(context.Background(), j, "my answer", end)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !result.Correct {
		t.Error("expected correct result")
	}
	if result.Feedback != solver.CorrectFeedback() {
		t.Errorf("unexpected feedback: %q", result.Feedback)
	}
	if len(result.Suggestions) != 0 {
		t.Errorf("expected no suggestions on success, got %v", result.Suggestions)
	}

	if att.Concept != "Hardness" {
		t.Errorf("expected attempt under Hardness, got %s", att.Concept)
	}
	if att.HintsUsed != 2 {
		t.Errorf("expected 2 hints on attempt, got %d", att.HintsUsed)
	}
	if att.TimeSpent != 90 {
		t.Errorf("expected 90 seconds spent, got %v", att.TimeSpent)
	}
	if !att.Correct {
		t.Error("expected correct attempt")
	}
	if att.ProblemID == "" {
		t.Error("expected a problem id")
	}
}

func TestSubmitAnswer_WrongOutcomeCarriesSuggestions(t *testing.T) {
	session := solver.NewSession("hardness problem", time.Now())
	session.AskConceptQuestion()

	j := &stubJudge{verdict: false}
	result, att, err := session.SubmitAnswer(context.Background(), j, "wrong", time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Correct {
		t.Error("expected wrong result")
	}
	if result.Feedback != solver.WrongFeedback() {
		t.Errorf("unexpected feedback: %q", result.Feedback)
	}
	if len(result.Suggestions) != 4 {
		t.Errorf("expected 4 suggestions, got %d", len(result.Suggestions))
	}
	if att.Correct {
		t.Error("expected wrong attempt")
	}
}

func TestSubmitAnswer_JudgeSeesConceptQuestion(t *testing.T) {
	session := solver.NewSession("hardness problem", time.Now())
	q, _ := session.AskConceptQuestion()

	j := &stubJudge{verdict: true}
	session.SubmitAnswer(context.Background(), j, "answer", time.Now())

	if j.lastQuestion != q {
		t.Errorf("expected judge to receive %q, got %q", q, j.lastQuestion)
	}
}

func TestSubmitAnswer_WithoutAskingQuestionStillJudges(t *testing.T) {
	// Skipping the concept-question step derives the question on the fly.
	session := solver.NewSession("hardness problem", time.Now())

	j := &stubJudge{verdict: true}
	_, _, err := session.SubmitAnswer(context.Background(), j, "answer", time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if j.lastQuestion == "" {
		t.Error("expected a derived question")
	}
}

func TestSubmitAnswer_TerminalIsAbsorbing(t *testing.T) {
	session := solver.NewSession("hardness problem", time.Now())
	j := &stubJudge{verdict: true}
	session.SubmitAnswer(context.Background(), j, "answer", time.Now())

	if session.State() != solver.StateTerminal {
		t.Fatalf("expected terminal state, got %s", session.State())
	}

	if _, _, err := session.SubmitAnswer(context.Background(), j, "again", time.Now()); !errors.Is(err, solver.ErrSessionTerminal) {
		t.Errorf("expected ErrSessionTerminal on resubmission, got %v", err)
	}
	if _, err := session.RequestHint(); !errors.Is(err, solver.ErrSessionTerminal) {
		t.Errorf("expected ErrSessionTerminal on hint after terminal, got %v", err)
	}
	if _, err := session.AskConceptQuestion(); !errors.Is(err, solver.ErrSessionTerminal) {
		t.Errorf("expected ErrSessionTerminal on question after terminal, got %v", err)
	}
}

func TestSubmitAnswer_JudgeErrorLeavesSessionOpen(t *testing.T) {
	session := solver.NewSession("hardness problem", time.Now())
	j := &stubJudge{err: errors.New("judge unavailable")}

	_, _, err := session.SubmitAnswer(context.Background(), j, "answer", time.Now())
	if err == nil {
		t.Fatal("expected error from failing judge")
	}
	if session.State() == solver.StateTerminal {
		t.Error("expected session to stay open after judge failure")
	}
}
