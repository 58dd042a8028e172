package usecase

import (
	"context"

	"personal-assistant/internal/model"
	"personal-assistant/internal/task"
	repo "personal-assistant/internal/task/repository"
)

// List returns tasks newest first, optionally filtered by status.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input task.ListInput) (task.ListOutput, error) {
	opt := repo.ListTasksOptions{Order: repo.OrderCreatedDesc}

	switch input.Status {
	case task.StatusAll:
	case task.StatusPending:
		pending := false
		opt.Completed = &pending
	case task.StatusCompleted:
		completed := true
		opt.Completed = &completed
	default:
		return task.ListOutput{}, task.ErrInvalidStatus
	}

	tasks, err := uc.repo.ListTasks(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListTasks: %v", err)
		return task.ListOutput{}, err
	}

	return task.ListOutput{Tasks: tasks}, nil
}
