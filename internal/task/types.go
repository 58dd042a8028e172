package task

import "personal-assistant/internal/model"

// Status filters listed tasks.
type Status string

const (
	StatusAll       Status = ""
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

type ListInput struct {
	Status Status
}

// ListOutput holds tasks newest first.
type ListOutput struct {
	Tasks []model.Task
}
