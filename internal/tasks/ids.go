package tasks

import "github.com/google/uuid"

const idPrefix = "task-"

// NewID returns a fresh task ID of the form task-<uuid>.
func NewID() string {
	return idPrefix + uuid.NewString()
}
