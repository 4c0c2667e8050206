package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"chat-task-assistant/internal/model"
	"chat-task-assistant/internal/task"
	repo "chat-task-assistant/internal/task/repository"
	"chat-task-assistant/internal/task/usecase"
	"chat-task-assistant/pkg/log"
)

// mockRepo is a minimal in-memory Repository.
type mockRepo struct {
	tasks      map[string]model.Task
	listErr    error
	lastUpdate repo.UpdateTaskOptions
}

func newMockRepo(tasks ...model.Task) *mockRepo {
	m := &mockRepo{tasks: make(map[string]model.Task)}
	for _, t := range tasks {
		m.tasks[t.ID] = t
	}
	return m
}

func (m *mockRepo) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	t := model.Task{ID: "generated", Title: opt.Title, Date: opt.Date, Notes: opt.Notes, Advice: opt.Advice}
	m.tasks[t.ID] = t
	return t, nil
}

func (m *mockRepo) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (model.Task, error) {
	return m.tasks[opt.ID], nil
}

func (m *mockRepo) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []model.Task
	for _, t := range m.tasks {
		out = append(out, t)
	}
	return out, nil
}

func (m *mockRepo) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
	m.lastUpdate = opt
	existing, ok := m.tasks[opt.ID]
	if !ok {
		return model.Task{}, nil
	}
	existing.Title = opt.Title
	existing.Date = opt.Date
	existing.Notes = opt.Notes
	existing.Completed = opt.Completed
	m.tasks[opt.ID] = existing
	return existing, nil
}

func (m *mockRepo) DeleteTask(ctx context.Context, id string) error {
	delete(m.tasks, id)
	return nil
}

func fixedTask() model.Task {
	return model.Task{
		ID:    "t1",
		Title: "Buy groceries",
		Date:  time.Date(2026, 1, 14, 0, 0, 0, 0, time.UTC),
		Notes: "milk",
	}
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestList(t *testing.T) {
	uc := usecase.New(newMockRepo(fixedTask()), log.NewNop())

	out, err := uc.List(context.Background(), task.ListTasksInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Total != 1 || len(out.Tasks) != 1 {
		t.Errorf("expected 1 task, got %+v", out)
	}
}

func TestListRepoError(t *testing.T) {
	m := newMockRepo()
	m.listErr = errors.New("db down")
	uc := usecase.New(m, log.NewNop())

	if _, err := uc.List(context.Background(), task.ListTasksInput{}); err == nil {
		t.Error("expected error")
	}
}

func TestDetail(t *testing.T) {
	uc := usecase.New(newMockRepo(fixedTask()), log.NewNop())

	out, err := uc.Detail(context.Background(), "t1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Task.Title != "Buy groceries" {
		t.Errorf("wrong task: %+v", out.Task)
	}

	if _, err := uc.Detail(context.Background(), "missing"); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestUpdatePartial(t *testing.T) {
	m := newMockRepo(fixedTask())
	uc := usecase.New(m, log.NewNop())

	out, err := uc.Update(context.Background(), task.UpdateTaskInput{
		ID:        "t1",
		Completed: boolPtr(true),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Task.Completed {
		t.Error("completed not applied")
	}
	// Unset fields keep existing values.
	if m.lastUpdate.Title != "Buy groceries" || m.lastUpdate.Notes != "milk" {
		t.Errorf("partial update clobbered fields: %+v", m.lastUpdate)
	}

	out, err = uc.Update(context.Background(), task.UpdateTaskInput{
		ID:    "t1",
		Title: strPtr("Buy groceries and bread"),
		Notes: strPtr(""),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Task.Title != "Buy groceries and bread" {
		t.Errorf("title not applied: %+v", out.Task)
	}
	if out.Task.Notes != "" {
		t.Error("explicit empty notes should clear the field")
	}
	if !out.Task.Completed {
		t.Error("previous completed value lost")
	}
}

func TestUpdateNotFound(t *testing.T) {
	uc := usecase.New(newMockRepo(), log.NewNop())

	_, err := uc.Update(context.Background(), task.UpdateTaskInput{ID: "missing", Completed: boolPtr(true)})
	if !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	m := newMockRepo(fixedTask())
	uc := usecase.New(m, log.NewNop())

	if err := uc.Delete(context.Background(), "t1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(m.tasks) != 0 {
		t.Error("task not deleted")
	}

	if err := uc.Delete(context.Background(), "t1"); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
}
