package model

import "time"

// Task is a to-do item owned by the assistant.
type Task struct {
	ID        string
	Title     string
	Completed bool
	CreatedAt time.Time
}
