package memory

import (
	"sync"
	"time"

	"personal-assistant/internal/meeting/repository"
	"personal-assistant/internal/model"

	"github.com/google/uuid"
)

type implRepository struct {
	mu       sync.RWMutex
	meetings []model.Meeting // insertion order
	now      func() time.Time
	newID    func() string
}

// New creates an in-process meeting store. Contents are lost on restart.
func New() repository.Repository {
	return &implRepository{
		now:   time.Now,
		newID: uuid.NewString,
	}
}
