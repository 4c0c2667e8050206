package http

import (
	"github.com/gin-gonic/gin"

	"chat-task-assistant/pkg/response"
)

// List godoc
// @Summary     List tasks
// @Description Lists stored tasks ordered by date ascending, newest first
// @Description within a day. All filters are optional and combine with AND.
// @Tags        Task
// @Produce     json
// @Param       completed query bool   false "Filter by completion state"
// @Param       date_from query string false "Inclusive lower bound (YYYY-MM-DD)"
// @Param       date_to   query string false "Inclusive upper bound (YYYY-MM-DD)"
// @Success     200 {object} listTaskResp
// @Failure     400 {object} response.Resp "Bad Request - malformed filter"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processListReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	output, err := h.uc.List(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newListTaskResp(output))
}

// Detail godoc
// @Summary     Get one task
// @Tags        Task
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} taskResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Detail(ctx, c.Param("id"))
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newTaskResp(output.Task))
}

// Update godoc
// @Summary     Update a task
// @Description Updates any subset of title, date, notes and completed.
// @Description Omitted fields keep their current value.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       id   path string        true "Task ID"
// @Param       body body updateTaskReq true "Fields to update"
// @Success     200 {object} taskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processUpdateReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	output, err := h.uc.Update(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newTaskResp(output.Task))
}

// Delete godoc
// @Summary     Delete a task
// @Tags        Task
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Delete(ctx, c.Param("id")); err != nil {
		h.mapError(c, err)
		return
	}

	response.OK(c, nil)
}
