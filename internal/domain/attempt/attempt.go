package attempt

import "time"

// LabMode distinguishes the two ways the virtual lab can be run.
type LabMode string

const (
	LabModeGuided LabMode = "guided"
	LabModeExam   LabMode = "exam"
)

// ProblemAttempt records one completed guided problem-solving session.
// Attempts are append-only: once created they are never mutated or deleted.
type ProblemAttempt struct {
	ProblemID string    `json:"problemId"`
	Concept   string    `json:"concept"`
	HintsUsed int       `json:"hintsUsed"`
	Correct   bool      `json:"correct"`
	TimeSpent float64   `json:"timeSpent"` // seconds
	Timestamp time.Time `json:"timestamp"`
}

// LabAttempt records one completed run of the virtual lab script.
type LabAttempt struct {
	LabID     string    `json:"labId"`
	Mode      LabMode   `json:"mode"`
	Score     int       `json:"score"` // 0-100
	Mistakes  int       `json:"mistakes"`
	Timestamp time.Time `json:"timestamp"`
}
