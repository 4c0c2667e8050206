package model

import "time"

// Task is a persisted reminder record. A Task always has a non-empty title
// and a valid calendar date; Advice and Notes default to empty strings and
// Completed defaults to false.
type Task struct {
	ID        string
	Title     string
	Date      time.Time // normalized to midnight in the service timezone
	Advice    string
	Notes     string
	Completed bool
	CreatedAt time.Time
}
