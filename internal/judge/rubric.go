package judge

import (
	"context"
	"fmt"
	"strings"
	"unicode"
)

// RubricJudge is the deterministic alternative to RandomJudge: it splits a
// model answer into key points and accepts the user's answer when enough of
// them are covered. It is the seam where a real evaluator plugs in later.
type RubricJudge struct {
	modelAnswers map[string]string // question text -> model answer
	threshold    float64           // fraction of key points that must be covered
}

var _ AnswerJudge = (*RubricJudge)(nil)

// NewRubricJudge creates a judge over the given question -> model answer
// table. threshold is the covered fraction required for a correct verdict.
func NewRubricJudge(modelAnswers map[string]string, threshold float64) *RubricJudge {
	return &RubricJudge{
		modelAnswers: modelAnswers,
		threshold:    threshold,
	}
}

func (j *RubricJudge) Judge(ctx context.Context, question, userAnswer string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, &JudgeError{Reason: "cancelled", Wrapped: err}
	}

	model, ok := j.modelAnswers[question]
	if !ok {
		return false, &JudgeError{Reason: fmt.Sprintf("no model answer for question %q", question)}
	}

	points := SplitKeyPoints(model)
	if len(points) == 0 {
		return false, &JudgeError{Reason: "model answer has no key points"}
	}

	answerLower := strings.ToLower(userAnswer)
	covered := 0
	for _, point := range points {
		if coversPoint(answerLower, point) {
			covered++
		}
	}

	return float64(covered)/float64(len(points)) >= j.threshold, nil
}

// coversPoint checks whether the answer touches a key point: at least half
// of the point's significant words must appear in the answer.
func coversPoint(answerLower, point string) bool {
	words := significantWords(point)
	if len(words) == 0 {
		return false
	}
	found := 0
	for _, w := range words {
		if strings.Contains(answerLower, w) {
			found++
		}
	}
	return float64(found)/float64(len(words)) >= 0.5
}

var stopWords = map[string]bool{
	"the": true, "and": true, "for": true, "are": true, "with": true,
	"that": true, "this": true, "from": true, "its": true, "can": true,
}

func significantWords(s string) []string {
	var words []string
	for _, w := range strings.Fields(strings.ToLower(s)) {
		w = strings.TrimFunc(w, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if len(w) < 3 || stopWords[w] {
			continue
		}
		words = append(words, w)
	}
	return words
}

// SplitKeyPoints breaks a model answer into individual points. It looks for
// bullet lists, numbered lists, or sentence boundaries.
func SplitKeyPoints(text string) []string {
	lines := strings.Split(strings.TrimSpace(text), "\n")

	var points []string
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		trimmed = strings.TrimLeft(trimmed, "•·")
		trimmed = strings.TrimSpace(trimmed)
		if strings.HasPrefix(trimmed, "- ") {
			trimmed = strings.TrimSpace(trimmed[2:])
		}
		if strings.HasPrefix(trimmed, "* ") {
			trimmed = strings.TrimSpace(trimmed[2:])
		}
		trimmed = stripNumberedPrefix(trimmed)

		if trimmed != "" {
			points = append(points, trimmed)
		}
	}

	// A single big block with no list structure gets split by sentences.
	if len(points) == 1 && len([]rune(points[0])) > 120 {
		sentences := splitSentences(points[0])
		if len(sentences) > 1 {
			points = sentences
		}
	}

	return points
}

// stripNumberedPrefix removes a leading "1. " or "1) " style prefix.
// Operates on runes for UTF-8 safety.
func stripNumberedPrefix(s string) string {
	runes := []rune(s)
	if len(runes) < 3 || !unicode.IsDigit(runes[0]) {
		return s
	}

	for i, r := range runes {
		if r == '.' || r == ')' {
			if i+1 < len(runes) && runes[i+1] == ' ' {
				return strings.TrimSpace(string(runes[i+2:]))
			}
			break
		}
		if !unicode.IsDigit(r) {
			break
		}
	}
	return s
}

// splitSentences does a basic sentence split on ". " boundaries.
func splitSentences(text string) []string {
	var sentences []string
	var current strings.Builder

	runes := []rune(text)
	for i, r := range runes {
		current.WriteRune(r)

		if r == '.' && i+1 < len(runes) && runes[i+1] == ' ' {
			sentence := strings.TrimSpace(current.String())
			if len([]rune(sentence)) > 10 {
				sentences = append(sentences, sentence)
			}
			current.Reset()
		}
	}

	sentence := strings.TrimSpace(current.String())
	if len([]rune(sentence)) > 10 {
		sentences = append(sentences, sentence)
	}

	return sentences
}
