package http

import (
	"github.com/gin-gonic/gin"

	"chat-task-assistant/pkg/response"
)

// Chat godoc
// @Summary     Process a chat message
// @Description Runs one natural-language message through the assistant. Task
// @Description messages create a stored task; anything else gets a reply.
// @Tags        Agent
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Chat message"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.Resp "Bad Request - empty message"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	output, err := h.uc.Process(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Process: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newChatResp(output))
}
