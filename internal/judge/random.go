package judge

import (
	"context"
	"math/rand"
	"sync"
)

// RandomJudge accepts answers with a fixed probability. It is the demo
// policy: the platform has no real evaluator yet, and a biased coin keeps
// the guided-solving loop interactive.
type RandomJudge struct {
	successRate float64

	mu  sync.Mutex
	rnd *rand.Rand
}

// Compile-time check: *RandomJudge satisfies the AnswerJudge interface.
var _ AnswerJudge = (*RandomJudge)(nil)

// NewRandomJudge creates a judge that accepts with the given probability.
// Tests pass a seeded source to make verdicts reproducible.
func NewRandomJudge(successRate float64, rnd *rand.Rand) *RandomJudge {
	return &RandomJudge{
		successRate: successRate,
		rnd:         rnd,
	}
}

func (j *RandomJudge) Judge(ctx context.Context, question, userAnswer string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, &JudgeError{Reason: "cancelled", Wrapped: err}
	}
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.rnd.Float64() < j.successRate, nil
}
