package solver

import (
	"fmt"
	"strings"
)

// detectionRule maps problem-text keywords to a concept. Rules run in order
// and every matching rule contributes its concept, so a problem can carry
// several detected concepts; the first one is the session's primary concept.
type detectionRule struct {
	keywords []string
	concept  string
}

var detectionRules = []detectionRule{
	{keywords: []string{"hardness", "ca", "mg"}, concept: "Hardness"},
	{keywords: []string{"ph", "hydrogen"}, concept: "pH"},
	{keywords: []string{"mole", "molar"}, concept: "Stoichiometry"},
	{keywords: []string{"concentration", "molarity"}, concept: "Concentration"},
	{keywords: []string{"water"}, concept: "Water chemistry"},
}

// fallbackConcepts is used when no detection rule matches.
var fallbackConcepts = []string{"General Chemistry"}

// DetectConcepts scans problem text for known concepts. It never returns an
// empty list: unrecognized problems fall back to General Chemistry.
func DetectConcepts(problem string) []string {
	concepts := detect(problem)
	if len(concepts) == 0 {
		return append([]string(nil), fallbackConcepts...)
	}
	return concepts
}

func detect(problem string) []string {
	lower := strings.ToLower(problem)

	var concepts []string
	for _, rule := range detectionRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				concepts = append(concepts, rule.concept)
				break
			}
		}
	}
	return concepts
}

// DetectionMessage builds the message shown alongside the detected concepts.
// It names only the concepts the rules matched, so an unrecognized problem
// yields an empty join while DetectConcepts still reports the fallback.
func DetectionMessage(problem string) string {
	return fmt.Sprintf("I've identified the core concepts: %s. Let's start step-by-step!", strings.Join(detect(problem), ", "))
}
