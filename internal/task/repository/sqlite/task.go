package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"chat-task-assistant/internal/model"
	repo "chat-task-assistant/internal/task/repository"
	"chat-task-assistant/pkg/datemath"
)

// CreateTask inserts a new task row, assigning ID and creation time.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	const query = `
		INSERT INTO tasks (id, title, date, advice, notes, completed, created_at)
		VALUES (?, ?, ?, ?, ?, 0, ?)`

	task := model.Task{
		ID:        uuid.NewString(),
		Title:     opt.Title,
		Date:      opt.Date,
		Advice:    opt.Advice,
		Notes:     opt.Notes,
		Completed: false,
		CreatedAt: time.Now().In(r.loc),
	}

	_, err := r.db.ExecContext(ctx, query,
		task.ID,
		task.Title,
		task.Date.Format(datemath.DateLayout),
		task.Advice,
		task.Notes,
		task.CreatedAt.UnixNano(),
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}
	return task, nil
}

// GetOneTask retrieves a single task by ID. Zero-value Task when not found.
func (r *implRepository) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (model.Task, error) {
	const query = `
		SELECT id, title, date, advice, notes, completed, created_at
		FROM tasks WHERE id = ? LIMIT 1`

	task, err := r.scanTask(r.db.QueryRowContext(ctx, query, opt.ID))
	if err == sql.ErrNoRows {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneTask"), err)
		return model.Task{}, repo.ErrFailedToGet
	}
	return task, nil
}

// ListTasks returns tasks matching the filters, ordered by date ascending
// then created_at descending.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, error) {
	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf(
		`SELECT id, title, date, advice, notes, completed, created_at FROM tasks %s`,
		mods,
	)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		task, err := r.scanTask(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTasks"), err)
			return nil, repo.ErrFailedToList
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	return tasks, nil
}

// UpdateTask overwrites a task's mutable fields by ID.
// Zero-value Task when the ID is absent.
func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
	const query = `
		UPDATE tasks SET title = ?, date = ?, notes = ?, completed = ?
		WHERE id = ?`

	res, err := r.db.ExecContext(ctx, query,
		opt.Title,
		opt.Date.Format(datemath.DateLayout),
		opt.Notes,
		boolToInt(opt.Completed),
		opt.ID,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTask"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	affected, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "%s rows affected: %v", r.dsn("UpdateTask"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	if affected == 0 {
		return model.Task{}, nil
	}

	return r.GetOneTask(ctx, repo.GetOneTaskOptions{ID: opt.ID})
}

// DeleteTask removes a task by ID.
func (r *implRepository) DeleteTask(ctx context.Context, id string) error {
	const query = `DELETE FROM tasks WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTask"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanTask reads one task row, converting the stored date text and unix-nano
// creation time back into time.Time values in the repository's location.
func (r *implRepository) scanTask(row rowScanner) (model.Task, error) {
	var (
		task      model.Task
		dateText  string
		completed int
		createdNs int64
	)
	if err := row.Scan(&task.ID, &task.Title, &dateText, &task.Advice, &task.Notes, &completed, &createdNs); err != nil {
		return model.Task{}, err
	}

	date, err := time.ParseInLocation(datemath.DateLayout, dateText, r.loc)
	if err != nil {
		return model.Task{}, fmt.Errorf("corrupt date %q: %w", dateText, err)
	}
	task.Date = date
	task.Completed = completed != 0
	task.CreatedAt = time.Unix(0, createdNs).In(r.loc)
	return task, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
