package repository

import "time"

type CreateMeetingOptions struct {
	Title     string
	StartTime time.Time
	EndTime   time.Time
}

// GetOneMeetingOptions filters a single lookup. Non-empty fields are ANDed.
// TitleContains is a case-insensitive substring match; the oldest match wins.
type GetOneMeetingOptions struct {
	ID            string
	TitleContains string
}

// ListMeetingsOptions lists meetings by ascending start time.
// Zero StartFrom / StartBefore leave that bound open.
type ListMeetingsOptions struct {
	StartFrom   time.Time
	StartBefore time.Time
}

type UpdateMeetingOptions struct {
	ID              string
	CalendarEventID string
}
