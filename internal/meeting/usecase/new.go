package usecase

import (
	"time"

	"personal-assistant/internal/meeting"
	"personal-assistant/internal/meeting/repository"
	"personal-assistant/pkg/log"
)

type implUseCase struct {
	repo repository.Repository
	l    log.Logger
	now  func() time.Time
}

var _ meeting.UseCase = (*implUseCase)(nil)

// New creates a new meeting UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
		now:  time.Now,
	}
}
