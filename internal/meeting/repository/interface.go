package repository

import (
	"context"

	"personal-assistant/internal/model"
)

// Repository is the data store for meetings.
// Lookups return a zero-value Meeting (ID == "") when nothing matches.
type Repository interface {
	CreateMeeting(ctx context.Context, opt CreateMeetingOptions) (model.Meeting, error)
	GetOneMeeting(ctx context.Context, opt GetOneMeetingOptions) (model.Meeting, error)
	ListMeetings(ctx context.Context, opt ListMeetingsOptions) ([]model.Meeting, error)
	UpdateMeeting(ctx context.Context, opt UpdateMeetingOptions) (model.Meeting, error)
	DeleteMeeting(ctx context.Context, id string) error
}
