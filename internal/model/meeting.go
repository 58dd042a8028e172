package model

import "time"

// Meeting is a scheduled time slot. EndTime is never before StartTime.
type Meeting struct {
	ID        string
	Title     string
	StartTime time.Time
	EndTime   time.Time
	CreatedAt time.Time

	// CalendarEventID is set once the meeting has been mirrored to Google Calendar.
	CalendarEventID string
}
