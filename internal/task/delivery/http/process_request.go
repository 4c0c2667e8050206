package http

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"chat-task-assistant/internal/task"
	"chat-task-assistant/pkg/datemath"
)

var errNoUpdateFields = errors.New("at least one field must be provided")

func (h *handler) processListReq(c *gin.Context) (task.ListTasksInput, error) {
	var input task.ListTasksInput

	if raw, ok := c.GetQuery("completed"); ok {
		completed, err := strconv.ParseBool(raw)
		if err != nil {
			return input, fmt.Errorf("invalid completed filter %q", raw)
		}
		input.Completed = &completed
	}

	from, err := h.parseDateQuery(c, "date_from")
	if err != nil {
		return input, err
	}
	input.DateFrom = from

	to, err := h.parseDateQuery(c, "date_to")
	if err != nil {
		return input, err
	}
	input.DateTo = to

	return input, nil
}

func (h *handler) parseDateQuery(c *gin.Context, key string) (*time.Time, error) {
	raw, ok := c.GetQuery(key)
	if !ok || raw == "" {
		return nil, nil
	}
	date, err := time.Parse(datemath.DateLayout, raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q, expected YYYY-MM-DD", key, raw)
	}
	return &date, nil
}

func (h *handler) processUpdateReq(c *gin.Context) (task.UpdateTaskInput, error) {
	var req updateTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return task.UpdateTaskInput{}, err
	}

	input := task.UpdateTaskInput{
		ID:        c.Param("id"),
		Notes:     req.Notes,
		Completed: req.Completed,
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return input, errors.New("title must not be empty")
		}
		input.Title = &title
	}

	if req.Date != nil {
		date, err := time.Parse(datemath.DateLayout, *req.Date)
		if err != nil {
			return input, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", *req.Date)
		}
		input.Date = &date
	}

	if input.Title == nil && input.Date == nil && input.Notes == nil && input.Completed == nil {
		return input, errNoUpdateFields
	}

	return input, nil
}
