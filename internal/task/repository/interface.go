package repository

import (
	"context"

	"chat-task-assistant/internal/model"
)

// Repository defines all data access methods for the Task entity.
type Repository interface {
	// CreateTask inserts a new task, assigning its ID and creation time.
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)

	// GetOneTask fetches a single task by the provided filters. Returns a
	// zero-value Task (ID == "") when not found; not-found is not an error.
	GetOneTask(ctx context.Context, opt GetOneTaskOptions) (model.Task, error)

	// ListTasks returns tasks matching the filters, ordered by date
	// ascending then created_at descending.
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, error)

	// UpdateTask overwrites a task's mutable fields by ID. Returns a
	// zero-value Task when the ID is absent.
	UpdateTask(ctx context.Context, opt UpdateTaskOptions) (model.Task, error)

	// DeleteTask removes a task by ID.
	DeleteTask(ctx context.Context, id string) error
}
