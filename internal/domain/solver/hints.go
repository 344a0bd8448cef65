package solver

// hintLadder is the fixed sequence of progressively more specific hints.
// Requests past the end saturate at the last entry; hints never cycle.
var hintLadder = []string{
	"Think about the units involved. What are you trying to find?",
	"Consider the relationships between the given quantities.",
	"Check if you need to convert units before calculation.",
	"Review the formula that connects these concepts.",
	"Double-check your arithmetic and significant figures.",
}

// HintAt returns the hint for the given zero-based position, clamped to the
// last rung of the ladder.
func HintAt(hintsUsed int) string {
	if hintsUsed < 0 {
		hintsUsed = 0
	}
	if hintsUsed >= len(hintLadder) {
		hintsUsed = len(hintLadder) - 1
	}
	return hintLadder[hintsUsed]
}

// HintCount is the length of the hint ladder.
func HintCount() int {
	return len(hintLadder)
}
