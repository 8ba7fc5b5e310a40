package tasks

import "errors"

var (
	// ErrTaskNotFound is returned when an action or store call names an ID
	// that is not in the list.
	ErrTaskNotFound = errors.New("task not found")

	// ErrEmptyText is returned by SaveEdit when empty edits are disabled.
	ErrEmptyText = errors.New("task text is empty")

	// ErrNotEditing is returned by SaveEdit when no edit is in progress.
	ErrNotEditing = errors.New("no task is being edited")
)
