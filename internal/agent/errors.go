package agent

import "errors"

// Domain-specific errors for the agent package.
var (
	// ErrTaskExtraction means a message was classified as a task but the
	// structured fields could not be produced. Nothing is persisted.
	ErrTaskExtraction = errors.New("failed to extract task details")

	// ErrTaskPersistence means extraction succeeded but the task could not
	// be stored.
	ErrTaskPersistence = errors.New("failed to save task")
)
