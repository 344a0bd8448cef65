package id

import "github.com/google/uuid"

// GenerateID creates a unique identifier for attempts, notes, and sessions.
func GenerateID() string {
	return uuid.NewString()
}
