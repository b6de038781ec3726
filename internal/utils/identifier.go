package utils

import (
	"fmt"

	"github.com/google/uuid"
)

// NewUniqueID generates a random UUID and re-rolls until taken reports
// it unused. The check-then-use gap is tolerated: a collision between
// two concurrent inserts of the same random UUID is astronomically
// unlikely.
func NewUniqueID(taken func(id string) (bool, error)) (string, error) {
	for {
		id := uuid.NewString()
		exists, err := taken(id)
		if err != nil {
			return "", fmt.Errorf("failed to check identifier: %w", err)
		}
		if !exists {
			return id, nil
		}
	}
}
