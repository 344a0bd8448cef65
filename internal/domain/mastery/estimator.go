package mastery

import (
	"sort"
	"time"

	"github.com/hydrolearn/backend/internal/domain/attempt"
)

// WeakConcept is the derived mastery estimate for a single concept.
// Invariants: 0 <= Strength <= 100 and WrongAttempts <= Attempts.
type WeakConcept struct {
	Concept       string    `json:"concept"`
	Strength      float64   `json:"strength"` // 0-100, lower = weaker
	Attempts      int       `json:"attempts"`
	WrongAttempts int       `json:"wrongAttempts"`
	LastPracticed time.Time `json:"lastPracticed"`
}

// hintAbsorption is how many hints a single attempt can absorb before the
// hint penalty reaches full weight for that attempt.
const hintAbsorption = 3

type conceptTally struct {
	attempts int
	wrong    int
	hints    int
}

// Estimate derives one WeakConcept per distinct concept in the attempt log.
//
// Each attempt contributes only to its primary concept. For a concept with
// n attempts, w wrong attempts, and h total hints:
//
//	accuracy    = (n - w) / n
//	hintPenalty = h / (n * 3)
//	strength    = clamp((accuracy - hintPenalty) * 100, 0, 100)
//
// Hints count against strength even on correct answers: heavy hint use is a
// proxy for conceptual struggle. The result fully replaces any previous
// estimate; nothing is merged incrementally. LastPracticed is stamped with
// the recomputation time, not the attempt's own timestamp.
func Estimate(attempts []attempt.ProblemAttempt, now time.Time) []WeakConcept {
	tallies := make(map[string]*conceptTally)
	var order []string

	for _, a := range attempts {
		tally, ok := tallies[a.Concept]
		if !ok {
			tally = &conceptTally{}
			tallies[a.Concept] = tally
			order = append(order, a.Concept)
		}
		tally.attempts++
		if !a.Correct {
			tally.wrong++
		}
		tally.hints += a.HintsUsed
	}

	concepts := make([]WeakConcept, 0, len(order))
	for _, name := range order {
		tally := tallies[name]
		accuracy := float64(tally.attempts-tally.wrong) / float64(tally.attempts)
		hintPenalty := float64(tally.hints) / float64(tally.attempts*hintAbsorption)
		strength := clamp((accuracy-hintPenalty)*100, 0, 100)

		concepts = append(concepts, WeakConcept{
			Concept:       name,
			Strength:      strength,
			Attempts:      tally.attempts,
			WrongAttempts: tally.wrong,
			LastPracticed: now,
		})
	}
	return concepts
}

// Weakest returns up to n concepts ordered ascending by strength.
// The sort is stable so ties keep their input order.
func Weakest(concepts []WeakConcept, n int) []WeakConcept {
	sorted := make([]WeakConcept, len(concepts))
	copy(sorted, concepts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Strength < sorted[j].Strength
	})
	if n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
