package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"chat-task-assistant/internal/task"
	"chat-task-assistant/pkg/response"
)

func (h *handler) mapError(c *gin.Context, err error) {
	if errors.Is(err, task.ErrTaskNotFound) {
		response.NotFound(c, task.ErrTaskNotFound.Error())
		return
	}
	response.InternalError(c)
}
