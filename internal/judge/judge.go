package judge

import (
	"context"
	"fmt"
)

// AnswerJudge decides whether a submitted answer to a concept-check question
// is correct. Implementations may use canned probabilities (demo), keyword
// rubrics, or a real evaluator; the state machine never hardcodes the policy.
type AnswerJudge interface {
	// Judge returns true when userAnswer is accepted for the given question.
	Judge(ctx context.Context, question, userAnswer string) (bool, error)
}

// JudgeError is returned when a judge cannot produce a verdict, so callers
// can distinguish "answer was wrong" from "judging failed."
type JudgeError struct {
	Reason  string
	Wrapped error
}

func (e *JudgeError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("judging failed: %s: %v", e.Reason, e.Wrapped)
	}
	return fmt.Sprintf("judging failed: %s", e.Reason)
}

func (e *JudgeError) Unwrap() error {
	return e.Wrapped
}
