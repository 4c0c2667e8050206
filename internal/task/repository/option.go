package repository

import "time"

// CreateTaskOptions holds parameters for inserting a new task.
type CreateTaskOptions struct {
	Title  string
	Date   time.Time
	Notes  string
	Advice string
}

// GetOneTaskOptions holds filter parameters for fetching a single task.
type GetOneTaskOptions struct {
	ID string
}

// ListTasksOptions holds filter parameters for listing tasks.
// Nil fields are not applied. Date bounds are inclusive.
type ListTasksOptions struct {
	Completed *bool
	DateFrom  *time.Time
	DateTo    *time.Time
}

// UpdateTaskOptions holds the full set of mutable fields for an update.
// The usecase resolves partial updates before calling the repository.
type UpdateTaskOptions struct {
	ID        string
	Title     string
	Date      time.Time
	Notes     string
	Completed bool
}
