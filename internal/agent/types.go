package agent

import "time"

// ProcessInput is one user chat message.
type ProcessInput struct {
	Message string // non-empty after trimming; enforced by the delivery layer
}

// Classification is the routing decision for a message. Confidence is
// advisory metadata only; no threshold is applied to it.
type Classification struct {
	IsTask     bool
	Confidence float64 // in [0,1]
}

// TaskInfo is the transient draft produced by extraction. It is enriched
// with advice and then handed to the store; never persisted directly.
type TaskInfo struct {
	Title  string
	Date   time.Time
	Notes  string
	Advice string
}

// TaskSummary is the projection of a created task returned to the caller.
type TaskSummary struct {
	ID     string
	Title  string
	Date   time.Time
	Notes  string
	Advice string
}

// ProcessOutput is the normalized reply for one processed message.
type ProcessOutput struct {
	Message string
	IsTask  bool
	Task    *TaskSummary // set only when IsTask is true
}
