package http

import (
	"github.com/gin-gonic/gin"

	"chat-task-assistant/internal/agent"
	"chat-task-assistant/pkg/log"
)

// Handler is the public interface for the agent HTTP delivery layer.
type Handler interface {
	Chat(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc agent.UseCase
}

// New creates a new HTTP handler for the agent domain.
func New(l log.Logger, uc agent.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
