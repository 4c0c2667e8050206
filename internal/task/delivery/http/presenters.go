package http

import (
	"chat-task-assistant/internal/model"
	"chat-task-assistant/internal/task"
	"chat-task-assistant/pkg/response"
)

type updateTaskReq struct {
	Title     *string `json:"title"`
	Date      *string `json:"date"`
	Notes     *string `json:"notes"`
	Completed *bool   `json:"completed"`
}

type taskResp struct {
	ID        string            `json:"id"`
	Title     string            `json:"title"`
	Date      response.Date     `json:"date"`
	Advice    string            `json:"advice"`
	Notes     string            `json:"notes"`
	Completed bool              `json:"completed"`
	CreatedAt response.DateTime `json:"created_at"`
}

type listTaskResp struct {
	Tasks []taskResp `json:"tasks"`
	Total int        `json:"total"`
}

func (h *handler) newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:        t.ID,
		Title:     t.Title,
		Date:      response.Date(t.Date),
		Advice:    t.Advice,
		Notes:     t.Notes,
		Completed: t.Completed,
		CreatedAt: response.DateTime(t.CreatedAt),
	}
}

func (h *handler) newListTaskResp(output task.ListTasksOutput) listTaskResp {
	tasks := make([]taskResp, 0, len(output.Tasks))
	for _, t := range output.Tasks {
		tasks = append(tasks, h.newTaskResp(t))
	}
	return listTaskResp{
		Tasks: tasks,
		Total: output.Total,
	}
}
