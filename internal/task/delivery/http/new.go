package http

import (
	"github.com/gin-gonic/gin"

	"chat-task-assistant/internal/task"
	"chat-task-assistant/pkg/log"
)

type Handler interface {
	List(c *gin.Context)
	Detail(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc task.UseCase
}

func New(l log.Logger, uc task.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
