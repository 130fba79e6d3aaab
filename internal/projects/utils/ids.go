package utils

import "github.com/google/uuid"

// NewID returns a random UUIDv4 string. Used for note, milestone and
// achievement IDs, and for project IDs on stores that don't assign their own.
func NewID() string {
	return uuid.New().String()
}
