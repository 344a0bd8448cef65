package note

import (
	"fmt"
	"math"
	"strings"
)

// ConceptNode is one entry in the evaluation's concept map.
type ConceptNode struct {
	Concept     string   `json:"concept"`
	Connections []string `json:"connections"`
}

// Evaluation is the full rubric result for one note. It is created fresh on
// every request and never persisted by the engine itself.
type Evaluation struct {
	Accuracy        int           `json:"accuracy"`
	Clarity         int           `json:"clarity"`
	Completeness    int           `json:"completeness"`
	OverallScore    int           `json:"overallScore"`
	Feedback        string        `json:"feedback"`
	ImprovedVersion string        `json:"improvedVersion"`
	MissingPoints   []string      `json:"missingPoints"`
	ConceptMap      []ConceptNode `json:"conceptMap"`
	FormulaSummary  []string      `json:"formulaSummary"`
}

// scoreCap keeps every sub-score below certainty; the rubric is a surface
// heuristic, not a grader.
const scoreCap = 95

// Evaluate scores a note against the rubric. It is a pure function: the
// same title and content always produce the same evaluation.
func Evaluate(title, content string) Evaluation {
	features := ExtractFeatures(content)
	lower := strings.ToLower(content)
	conceptCount := len(features.DetectedConcepts)

	accuracy := 70
	if features.HasFormulas {
		accuracy += 10
	}
	if conceptCount > 2 {
		accuracy += 10
	}

	clarity := 65
	if features.HasStructure {
		clarity += 15
	}
	if features.WordCount > 50 {
		clarity += 10
	}

	completeness := 60 + conceptCount*5
	if features.HasExamples {
		completeness += 10
	}

	accuracy = min(scoreCap, accuracy)
	clarity = min(scoreCap, clarity)
	completeness = min(scoreCap, completeness)
	overall := int(math.Round(float64(accuracy+clarity+completeness) / 3))

	feedback := feedbackGood
	switch {
	case overall < 70:
		feedback = feedbackNeedsDetail
	case overall >= 85:
		feedback = feedbackExcellent
	}

	missingPoints := []string{}
	for _, rule := range gapRules {
		if strings.Contains(lower, rule.mentions) && !strings.Contains(lower, rule.lacks) {
			missingPoints = append(missingPoints, rule.point)
		}
	}

	improved := content
	if strings.Contains(lower, "hardness") {
		improved = fmt.Sprintf(improvedHardnessTemplate, title)
	}

	conceptMap := make([]ConceptNode, 0, conceptCount)
	for _, concept := range features.DetectedConcepts {
		connections := conceptConnections[concept]
		node := ConceptNode{Concept: concept, Connections: []string{}}
		node.Connections = append(node.Connections, connections...)
		conceptMap = append(conceptMap, node)
	}

	formulaSummary := []string{}
	for _, block := range formulaBlocks {
		if strings.Contains(lower, block.trigger) {
			formulaSummary = append(formulaSummary, block.lines...)
		}
	}

	return Evaluation{
		Accuracy:        accuracy,
		Clarity:         clarity,
		Completeness:    completeness,
		OverallScore:    overall,
		Feedback:        feedback,
		ImprovedVersion: improved,
		MissingPoints:   missingPoints,
		ConceptMap:      conceptMap,
		FormulaSummary:  formulaSummary,
	}
}

// FallbackEvaluation is the fixed result a calling collaborator substitutes
// when evaluation fails unexpectedly, so the student is never shown a blank
// failure.
func FallbackEvaluation() Evaluation {
	return Evaluation{
		Accuracy:     85,
		Clarity:      78,
		Completeness: 72,
		OverallScore: 78,
		Feedback: "Good understanding of basic concepts! Your notes cover the main points about water hardness. " +
			"Consider adding more details about the EDTA titration method and pH effects.",
		ImprovedVersion: fmt.Sprintf(improvedHardnessTemplate, "Water Hardness"),
		MissingPoints: []string{
			"EDTA titration procedure details",
			"pH buffer importance (pH 10)",
			"Eriochrome Black T indicator mechanism",
			"Calculation formula for hardness",
		},
		ConceptMap: []ConceptNode{
			{Concept: "Water Hardness", Connections: []string{"Calcium", "Magnesium", "EDTA"}},
			{Concept: "EDTA", Connections: []string{"Complexation", "Titration", "Indicator"}},
		},
		FormulaSummary: []string{
			"Hardness (ppm) = (Volume of EDTA × Molarity × 1000) / Volume of Sample",
			"1° Hardness = 1 mg CaCO₃ per liter",
		},
	}
}
