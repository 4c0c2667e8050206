package task

import "context"

// UseCase defines the business logic interface for the task CRUD surface.
// Tasks are created by the agent domain; this surface only reads and mutates.
type UseCase interface {
	// List returns stored tasks matching the filters, ordered by date
	// ascending then creation time descending.
	List(ctx context.Context, input ListTasksInput) (ListTasksOutput, error)

	// Detail retrieves a single task by ID. Returns ErrTaskNotFound when absent.
	Detail(ctx context.Context, id string) (DetailTaskOutput, error)

	// Update modifies the provided subset of fields. Returns ErrTaskNotFound
	// when the ID is absent.
	Update(ctx context.Context, input UpdateTaskInput) (UpdateTaskOutput, error)

	// Delete removes a task by ID. Returns ErrTaskNotFound when absent.
	Delete(ctx context.Context, id string) error
}
