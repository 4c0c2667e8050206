package task

import (
	"time"

	"chat-task-assistant/internal/model"
)

// --- UseCase Inputs ---

// ListTasksInput filters the task list. Nil fields are not applied.
type ListTasksInput struct {
	Completed *bool
	DateFrom  *time.Time
	DateTo    *time.Time
}

// UpdateTaskInput updates an arbitrary subset of a task's mutable fields.
// Nil fields keep their current value.
type UpdateTaskInput struct {
	ID        string
	Title     *string
	Date      *time.Time
	Notes     *string
	Completed *bool
}

// --- UseCase Outputs ---

type ListTasksOutput struct {
	Tasks []model.Task
	Total int
}

type DetailTaskOutput struct {
	Task model.Task
}

type UpdateTaskOutput struct {
	Task model.Task
}
