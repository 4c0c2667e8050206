package http

import (
	"chat-task-assistant/internal/agent"
	"chat-task-assistant/pkg/response"
)

// --- Request DTOs ---

type chatReq struct {
	Message string `json:"message" binding:"required"`
}

func (r chatReq) toInput() agent.ProcessInput {
	return agent.ProcessInput{Message: r.Message}
}

// --- Response DTOs ---

type chatTaskResp struct {
	ID     string        `json:"id"`
	Title  string        `json:"title"`
	Date   response.Date `json:"date"`
	Notes  string        `json:"notes"`
	Advice string        `json:"advice"`
}

type chatResp struct {
	Message string        `json:"message"`
	IsTask  bool          `json:"is_task"`
	Task    *chatTaskResp `json:"task,omitempty"`
}

func (h *handler) newChatResp(out agent.ProcessOutput) chatResp {
	resp := chatResp{
		Message: out.Message,
		IsTask:  out.IsTask,
	}
	if out.Task != nil {
		resp.Task = &chatTaskResp{
			ID:     out.Task.ID,
			Title:  out.Task.Title,
			Date:   response.Date(out.Task.Date),
			Notes:  out.Task.Notes,
			Advice: out.Task.Advice,
		}
	}
	return resp
}
