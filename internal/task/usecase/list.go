package usecase

import (
	"context"

	"chat-task-assistant/internal/task"
	repo "chat-task-assistant/internal/task/repository"
)

// List returns stored tasks matching the filters.
func (uc *implUseCase) List(ctx context.Context, input task.ListTasksInput) (task.ListTasksOutput, error) {
	tasks, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{
		Completed: input.Completed,
		DateFrom:  input.DateFrom,
		DateTo:    input.DateTo,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListTasks: %v", err)
		return task.ListTasksOutput{}, err
	}

	return task.ListTasksOutput{
		Tasks: tasks,
		Total: len(tasks),
	}, nil
}
