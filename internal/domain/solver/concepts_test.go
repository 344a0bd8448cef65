package solver_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/hydrolearn/backend/internal/domain/solver"
)

func TestDetectConcepts_MultipleRulesMatch(t *testing.T) {
	concepts := solver.DetectConcepts("Calculate the hardness of a water sample in ppm")

	// "hardness" and "water" both match; "calculate" also trips the "ca"
	// keyword, but Hardness is contributed only once per rule pass.
	want := []string{"Hardness", "Water chemistry"}
	if !reflect.DeepEqual(concepts, want) {
		t.Errorf("expected %v, got %v", want, concepts)
	}
}

func TestDetectConcepts_SingleMatch(t *testing.T) {
	concepts := solver.DetectConcepts("find the ph of the solution")

	if !reflect.DeepEqual(concepts, []string{"pH"}) {
		t.Errorf("expected [pH], got %v", concepts)
	}
}

func TestDetectConcepts_FallbackNeverEmpty(t *testing.T) {
	concepts := solver.DetectConcepts("something entirely unrelated")

	if !reflect.DeepEqual(concepts, []string{"General Chemistry"}) {
		t.Errorf("expected General Chemistry fallback, got %v", concepts)
	}
}

func TestDetectionMessage_JoinsConcepts(t *testing.T) {
	msg := solver.DetectionMessage("hardness and ph levels")

	if !strings.Contains(msg, "Hardness, pH") {
		t.Errorf("expected joined concepts in message, got %q", msg)
	}
	if !strings.Contains(msg, "step-by-step") {
		t.Errorf("unexpected message shape: %q", msg)
	}
}

func TestDetectionMessage_UnrecognizedProblemOmitsFallback(t *testing.T) {
	msg := solver.DetectionMessage("something entirely unrelated")

	if msg != "I've identified the core concepts: . Let's start step-by-step!" {
		t.Errorf("expected empty concept join, got %q", msg)
	}
}

func TestConceptQuestion_FirstRuleWins(t *testing.T) {
	// A problem mentioning both hardness and pH gets the hardness question.
	q := solver.ConceptQuestion("hardness and ph of a sample")

	if !strings.Contains(q, "temporary and permanent hardness") {
		t.Errorf("expected hardness question, got %q", q)
	}
}

func TestConceptQuestion_GenericFallback(t *testing.T) {
	q := solver.ConceptQuestion("an unclassifiable problem")

	if q != "What are the key principles involved in solving this type of problem?" {
		t.Errorf("expected generic question, got %q", q)
	}
}

func TestModelAnswers_CoverEveryQuestion(t *testing.T) {
	answers := solver.ModelAnswers()

	for _, problem := range []string{
		"hardness problem",
		"ph problem",
		"mole problem",
		"unclassifiable problem",
	} {
		q := solver.ConceptQuestion(problem)
		if answers[q] == "" {
			t.Errorf("no model answer for question %q", q)
		}
	}
}

func TestHintAt_SaturatesAtLastRung(t *testing.T) {
	last := solver.HintAt(solver.HintCount() - 1)

	if solver.HintAt(100) != last {
		t.Error("expected requests past the ladder to repeat the last hint")
	}
	if solver.HintAt(solver.HintCount()) != last {
		t.Error("expected first out-of-range request to repeat the last hint")
	}
}

func TestHintAt_DistinctRungs(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < solver.HintCount(); i++ {
		hint := solver.HintAt(i)
		if seen[hint] {
			t.Errorf("duplicate hint at position %d: %q", i, hint)
		}
		seen[hint] = true
	}
}
