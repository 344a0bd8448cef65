package lab_test

import (
	"errors"
	"testing"

	"github.com/hydrolearn/backend/internal/domain/lab"
)

func TestSteps_ScriptShape(t *testing.T) {
	steps := lab.Steps()

	if len(steps) != 5 {
		t.Fatalf("expected 5 steps, got %d", len(steps))
	}
	if len(steps)*lab.ScorePerStep != 100 {
		t.Errorf("expected steps to sum to a perfect 100, got %d", len(steps)*lab.ScorePerStep)
	}
	for _, s := range steps {
		if s.ID == "" || s.Description == "" || s.Explanation == "" {
			t.Errorf("step %q missing fields", s.ID)
		}
		if len(s.Options) == 0 || len(s.CorrectAnswers) == 0 {
			t.Errorf("step %q missing options or answers", s.ID)
		}
	}
}

func TestSteps_ReturnsCopy(t *testing.T) {
	first := lab.Steps()
	first[0].Description = "tampered"

	if lab.Steps()[0].Description == "tampered" {
		t.Error("expected Steps to return an independent copy")
	}
}

func TestGradeStep_ExactChoiceMatch(t *testing.T) {
	result, err := lab.GradeStep("1", "EDTA Solution")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Correct {
		t.Error("expected correct option to pass")
	}
	if result.Explanation == "" {
		t.Error("expected an explanation")
	}
}

func TestGradeStep_WrongChoice(t *testing.T) {
	result, err := lab.GradeStep("1", "Sodium Hydroxide")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Correct {
		t.Error("expected wrong option to fail")
	}
	if result.Explanation == "" {
		t.Error("expected an explanation even on failure")
	}
}

func TestGradeStep_ChoiceIsCaseSensitive(t *testing.T) {
	result, err := lab.GradeStep("2", "burette")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Correct {
		t.Error("expected lowercase option to fail the exact match")
	}
}

func TestGradeStep_SequenceAcceptsAnyOrder(t *testing.T) {
	result, err := lab.GradeStep("4", "Note endpoint, Add sample, Titrate with EDTA, Add indicator")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Correct {
		t.Error("expected reordered complete sequence to pass")
	}
}

func TestGradeStep_SequenceToleratesSpacing(t *testing.T) {
	result, err := lab.GradeStep("4", " Add sample ,Add indicator,  Titrate with EDTA , Note endpoint ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Correct {
		t.Error("expected whitespace around actions to be ignored")
	}
}

func TestGradeStep_SequenceRejectsMissingAction(t *testing.T) {
	result, err := lab.GradeStep("4", "Add sample, Add indicator, Titrate with EDTA")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Correct {
		t.Error("expected incomplete sequence to fail")
	}
}

func TestGradeStep_UnknownStep(t *testing.T) {
	_, err := lab.GradeStep("99", "anything")
	if !errors.Is(err, lab.ErrStepNotFound) {
		t.Errorf("expected ErrStepNotFound, got %v", err)
	}
}

func TestPreLabContent_Briefing(t *testing.T) {
	pre := lab.PreLabContent()

	if pre.Objective == "" {
		t.Error("expected an objective")
	}
	if len(pre.Apparatus) == 0 || len(pre.Chemicals) == 0 || len(pre.Safety) == 0 {
		t.Error("expected apparatus, chemicals, and safety lists")
	}
}
