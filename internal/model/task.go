package model

// Task is a single to-do entry. ID is assigned once at creation and never
// changes; Text is whatever the user typed (duplicates allowed).
type Task struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}
