package http

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
)

var errEmptyMessage = errors.New("message is required")

// processChatReq binds and validates the chat request body. The non-empty
// precondition on the message lives here, not in the usecase.
func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.Message = strings.TrimSpace(req.Message)
	if req.Message == "" {
		return req, errEmptyMessage
	}
	return req, nil
}
