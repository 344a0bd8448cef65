package lab

import (
	"errors"
	"sort"
	"strings"
)

// LabID identifies the one scripted experiment currently shipped.
const LabID = "water_hardness_edta"

// StepKind categorizes what the student does at a step.
type StepKind string

const (
	StepSelectChemical  StepKind = "select-chemical"
	StepSelectApparatus StepKind = "select-apparatus"
	StepPerformAction   StepKind = "perform-action"
)

// ErrStepNotFound is returned when grading references an unknown step.
var ErrStepNotFound = errors.New("lab step not found")

// Step is one entry in the fixed lab script.
type Step struct {
	ID          string   `json:"id"`
	Description string   `json:"description"`
	Kind        StepKind `json:"type"`
	Options     []string `json:"options"`
	// CorrectAnswers holds one entry for a single-choice step and the full
	// expected sequence for a perform-action step.
	CorrectAnswers []string `json:"correctAnswer"`
	Explanation    string   `json:"explanation"`
}

// ScorePerStep is awarded for each correctly completed step; five steps
// make a perfect 100.
const ScorePerStep = 20

var steps = []Step{
	{
		ID:             "1",
		Description:    "Select the primary chemical needed for water hardness testing",
		Kind:           StepSelectChemical,
		Options:        []string{"EDTA Solution", "Sodium Hydroxide", "Hydrochloric Acid", "Phenolphthalein"},
		CorrectAnswers: []string{"EDTA Solution"},
		Explanation:    "EDTA (Ethylenediaminetetraacetic acid) is used as a complexing agent to determine water hardness.",
	},
	{
		ID:             "2",
		Description:    "Select the appropriate apparatus for titration",
		Kind:           StepSelectApparatus,
		Options:        []string{"Beaker", "Burette", "Test Tube", "Pipette"},
		CorrectAnswers: []string{"Burette"},
		Explanation:    "A burette is used for precise volume measurement during titration.",
	},
	{
		ID:             "3",
		Description:    "Select the indicator for hardness determination",
		Kind:           StepSelectChemical,
		Options:        []string{"Methyl Orange", "Eriochrome Black T", "Phenolphthalein", "Litmus"},
		CorrectAnswers: []string{"Eriochrome Black T"},
		Explanation:    "Eriochrome Black T is the specific indicator used in EDTA titration for hardness.",
	},
	{
		ID:             "4",
		Description:    "Arrange the steps in correct order: Add sample → Add indicator → Titrate with EDTA → Note endpoint",
		Kind:           StepPerformAction,
		Options:        []string{"Add sample", "Add indicator", "Titrate with EDTA", "Note endpoint"},
		CorrectAnswers: []string{"Add sample", "Add indicator", "Titrate with EDTA", "Note endpoint"},
		Explanation:    "The correct sequence ensures accurate measurement of water hardness.",
	},
	{
		ID:             "5",
		Description:    "What safety precaution is most important?",
		Kind:           StepSelectChemical,
		Options:        []string{"Wear gloves", "Use fume hood", "Handle glassware carefully", "All of the above"},
		CorrectAnswers: []string{"All of the above"},
		Explanation:    "All safety measures are important in laboratory work.",
	},
}

// PreLab is the briefing shown before the experiment starts.
type PreLab struct {
	Objective string   `json:"objective"`
	Apparatus []string `json:"apparatus"`
	Chemicals []string `json:"chemicals"`
	Safety    []string `json:"safety"`
}

var preLab = PreLab{
	Objective: "To determine the total hardness of a water sample using EDTA titration method.",
	Apparatus: []string{
		"Burette (50 mL)",
		"Pipette (25 mL)",
		"Conical flask (250 mL)",
		"Beaker (100 mL)",
		"Measuring cylinder",
		"Burette stand",
	},
	Chemicals: []string{
		"EDTA solution (0.01 M)",
		"Eriochrome Black T indicator",
		"Buffer solution (pH 10)",
		"Water sample",
	},
	Safety: []string{
		"Wear safety goggles and lab coat",
		"Handle glassware carefully",
		"Dispose of chemicals properly",
		"Wash hands after experiment",
	},
}

// Steps returns the fixed lab script.
func Steps() []Step {
	out := make([]Step, len(steps))
	copy(out, steps)
	return out
}

// PreLabContent returns the pre-lab briefing.
func PreLabContent() PreLab {
	return preLab
}

// StepResult reports one graded lab step.
type StepResult struct {
	Correct     bool   `json:"correct"`
	Explanation string `json:"explanation"`
}

// GradeStep checks a student's answer for one step. Single-choice steps
// require an exact option match. The perform-action step takes a
// comma-separated sequence compared as a set, so listing every action in
// any order passes.
func GradeStep(stepID, answer string) (StepResult, error) {
	var step *Step
	for i := range steps {
		if steps[i].ID == stepID {
			step = &steps[i]
			break
		}
	}
	if step == nil {
		return StepResult{}, ErrStepNotFound
	}

	var correct bool
	if step.Kind == StepPerformAction {
		correct = sameSet(splitSequence(answer), step.CorrectAnswers)
	} else {
		correct = answer == step.CorrectAnswers[0]
	}

	return StepResult{Correct: correct, Explanation: step.Explanation}, nil
}

func splitSequence(answer string) []string {
	parts := strings.Split(answer, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func sameSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	as := append([]string(nil), a...)
	bs := append([]string(nil), b...)
	sort.Strings(as)
	sort.Strings(bs)
	for i := range as {
		if as[i] != bs[i] {
			return false
		}
	}
	return true
}
