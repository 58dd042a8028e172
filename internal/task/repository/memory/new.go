package memory

import (
	"sync"
	"time"

	"personal-assistant/internal/task/repository"

	"github.com/google/uuid"
)

type implRepository struct {
	mu    sync.RWMutex
	tasks []taskRow // insertion order
	seq   int64
	now   func() time.Time
	newID func() string
}

type taskRow struct {
	seq int64
	id  string

	title     string
	completed bool
	createdAt time.Time
}

// New creates an in-process task store. Contents are lost on restart.
func New() repository.Repository {
	return &implRepository{
		now:   time.Now,
		newID: uuid.NewString,
	}
}
