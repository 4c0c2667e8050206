package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrTaskNotFound = errors.New("task not found")
)
