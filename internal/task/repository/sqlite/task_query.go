package sqlite

import (
	"strings"

	repo "chat-task-assistant/internal/task/repository"
	"chat-task-assistant/pkg/datemath"
)

// buildListQuery builds the WHERE + ORDER clause for ListTasks.
// All provided filters are applied as AND conditions; date bounds are
// inclusive. Dates are stored as YYYY-MM-DD text, so lexicographic
// comparison matches chronological order.
func (r *implRepository) buildListQuery(opt repo.ListTasksOptions) (string, []any) {
	var conditions []string
	var args []any

	if opt.Completed != nil {
		conditions = append(conditions, "completed = ?")
		args = append(args, boolToInt(*opt.Completed))
	}
	if opt.DateFrom != nil {
		conditions = append(conditions, "date >= ?")
		args = append(args, opt.DateFrom.Format(datemath.DateLayout))
	}
	if opt.DateTo != nil {
		conditions = append(conditions, "date <= ?")
		args = append(args, opt.DateTo.Format(datemath.DateLayout))
	}

	var sb strings.Builder
	if len(conditions) > 0 {
		sb.WriteString("WHERE ")
		sb.WriteString(strings.Join(conditions, " AND "))
		sb.WriteString(" ")
	}
	sb.WriteString("ORDER BY date ASC, created_at DESC")

	return sb.String(), args
}
