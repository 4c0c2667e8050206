package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"chat-task-assistant/internal/agent"
	"chat-task-assistant/pkg/response"
)

// GenericApology is the caller-visible text for fatal pipeline failures.
// Details stay in the logs.
const GenericApology = "Sorry, I couldn't save that task right now. Please try again in a moment."

// mapError translates agent domain errors into HTTP responses. Extraction
// and persistence failures are the only hard errors the usecase surfaces;
// both become the same generic apology.
func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, agent.ErrTaskExtraction), errors.Is(err, agent.ErrTaskPersistence):
		response.Error(c, http.StatusInternalServerError, GenericApology)
	default:
		response.InternalError(c)
	}
}
