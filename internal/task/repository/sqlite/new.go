package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"chat-task-assistant/internal/task/repository"
	"chat-task-assistant/pkg/log"
)

const schema = `
CREATE TABLE IF NOT EXISTS tasks (
	id         TEXT PRIMARY KEY,
	title      TEXT NOT NULL,
	date       TEXT NOT NULL,
	advice     TEXT NOT NULL DEFAULT '',
	notes      TEXT NOT NULL DEFAULT '',
	completed  INTEGER NOT NULL DEFAULT 0,
	created_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_tasks_date ON tasks(date);
`

type implRepository struct {
	db  *sql.DB
	loc *time.Location
	l   log.Logger
}

// Open opens (or creates) the SQLite database at path and applies the schema.
// Pragmas ride on the DSN so they apply to every pooled connection.
func Open(path string) (*sql.DB, error) {
	dsn := path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}
	return db, nil
}

// New creates a new SQLite-backed Repository for the task domain.
// Dates are materialized in loc so calendar comparisons stay in the
// service timezone.
func New(db *sql.DB, loc *time.Location, l log.Logger) repository.Repository {
	if db == nil {
		panic("task/repository/sqlite: db is required")
	}
	if loc == nil {
		loc = time.UTC
	}
	return &implRepository{db: db, loc: loc, l: l}
}

// dsn returns a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("task/repository/sqlite.%s", method)
}
