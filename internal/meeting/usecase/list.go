package usecase

import (
	"context"

	"personal-assistant/internal/meeting"
	repo "personal-assistant/internal/meeting/repository"
	"personal-assistant/internal/model"
)

// List returns meetings by ascending start time.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input meeting.ListInput) (meeting.ListOutput, error) {
	if !input.From.IsZero() && !input.To.IsZero() && !input.To.After(input.From) {
		return meeting.ListOutput{}, meeting.ErrInvalidRange
	}

	meetings, err := uc.repo.ListMeetings(ctx, repo.ListMeetingsOptions{
		StartFrom:   input.From,
		StartBefore: input.To,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListMeetings: %v", err)
		return meeting.ListOutput{}, err
	}

	return meeting.ListOutput{Meetings: meetings}, nil
}
