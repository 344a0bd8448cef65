package note

import "time"

// Note is a saved teach-back note. The evaluation that produced
// QualityScore and Concepts is not stored; saving is the caller's choice.
type Note struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	QualityScore int       `json:"qualityScore"`
	Concepts     []string  `json:"concepts"`
	Timestamp    time.Time `json:"timestamp"`
}
