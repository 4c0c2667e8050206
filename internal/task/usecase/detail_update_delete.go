package usecase

import (
	"context"

	"chat-task-assistant/internal/task"
	repo "chat-task-assistant/internal/task/repository"
)

// Detail retrieves a single task by ID. Returns ErrTaskNotFound when absent.
func (uc *implUseCase) Detail(ctx context.Context, id string) (task.DetailTaskOutput, error) {
	existing, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneTask: %v", err)
		return task.DetailTaskOutput{}, err
	}
	if existing.ID == "" {
		return task.DetailTaskOutput{}, task.ErrTaskNotFound
	}
	return task.DetailTaskOutput{Task: existing}, nil
}

// Update modifies the provided subset of fields on an existing task.
// Unset fields keep their current values.
func (uc *implUseCase) Update(ctx context.Context, input task.UpdateTaskInput) (task.UpdateTaskOutput, error) {
	existing, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: input.ID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetOneTask: %v", err)
		return task.UpdateTaskOutput{}, err
	}
	if existing.ID == "" {
		return task.UpdateTaskOutput{}, task.ErrTaskNotFound
	}

	opt := repo.UpdateTaskOptions{
		ID:        existing.ID,
		Title:     existing.Title,
		Date:      existing.Date,
		Notes:     existing.Notes,
		Completed: existing.Completed,
	}
	if input.Title != nil {
		opt.Title = *input.Title
	}
	if input.Date != nil {
		opt.Date = *input.Date
	}
	if input.Notes != nil {
		opt.Notes = *input.Notes
	}
	if input.Completed != nil {
		opt.Completed = *input.Completed
	}

	updated, err := uc.repo.UpdateTask(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateTask: %v", err)
		return task.UpdateTaskOutput{}, err
	}
	if updated.ID == "" {
		// Row vanished between the read and the write.
		return task.UpdateTaskOutput{}, task.ErrTaskNotFound
	}
	return task.UpdateTaskOutput{Task: updated}, nil
}

// Delete removes a task by ID. Returns ErrTaskNotFound when absent.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	existing, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetOneTask: %v", err)
		return err
	}
	if existing.ID == "" {
		return task.ErrTaskNotFound
	}
	if err := uc.repo.DeleteTask(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteTask: %v", err)
		return err
	}
	return nil
}
