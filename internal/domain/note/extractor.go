package note

import (
	"regexp"
	"strings"
)

// Features are the surface signals extracted from a note's content.
type Features struct {
	DetectedConcepts []string
	WordCount        int
	HasFormulas      bool
	HasExamples      bool
	HasStructure     bool
}

// conceptRule maps keyword triggers to a concept name. Rules are evaluated
// in order and each concept is detected at most once, no matter how many of
// its keywords match.
type conceptRule struct {
	keywords []string
	concept  string
}

var conceptRules = []conceptRule{
	{keywords: []string{"hardness", "ca", "mg"}, concept: "Water Hardness"},
	{keywords: []string{"edta"}, concept: "EDTA"},
	{keywords: []string{"ph"}, concept: "pH"},
	{keywords: []string{"titration"}, concept: "Titration"},
	{keywords: []string{"alkalinity"}, concept: "Alkalinity"},
}

// formulaPattern matches an element symbol with an optional digit, or one of
// the literal formulas that appear throughout the chapter.
var formulaPattern = regexp.MustCompile(`[A-Z][a-z]?\d*|H₂O|CaCO₃|EDTA|pH`)

var structureMarkers = []string{"#", "**", "1."}

// ExtractFeatures analyzes note content for detected concepts and
// structural signals. Matching is case-insensitive on the content.
func ExtractFeatures(content string) Features {
	lower := strings.ToLower(content)

	var concepts []string
	for _, rule := range conceptRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				concepts = append(concepts, rule.concept)
				break
			}
		}
	}

	hasStructure := false
	for _, marker := range structureMarkers {
		if strings.Contains(lower, marker) {
			hasStructure = true
			break
		}
	}

	return Features{
		DetectedConcepts: concepts,
		WordCount:        len(strings.Fields(content)),
		HasFormulas:      formulaPattern.MatchString(content),
		HasExamples:      strings.Contains(lower, "example") || strings.Contains(lower, "for instance"),
		HasStructure:     hasStructure,
	}
}
