package http

import (
	"personal-assistant/internal/model"
	"personal-assistant/internal/task"
	"personal-assistant/pkg/response"
)

// --- Request DTOs ---

type listReq struct {
	Status string `form:"status" binding:"omitempty,oneof=pending completed"`
}

func (r listReq) toInput() task.ListInput {
	return task.ListInput{Status: task.Status(r.Status)}
}

// --- Response DTOs ---

type taskResp struct {
	ID        string             `json:"id"`
	Title     string             `json:"title"`
	Completed bool               `json:"completed"`
	CreatedAt response.Timestamp `json:"created_at" swaggertype:"string"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:        t.ID,
		Title:     t.Title,
		Completed: t.Completed,
		CreatedAt: response.Timestamp(t.CreatedAt),
	}
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
}

func (h *handler) newListResp(out task.ListOutput) listResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return listResp{Tasks: tasks}
}
