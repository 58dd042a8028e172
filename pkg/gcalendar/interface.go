package gcalendar

import "context"

const (
	PrimaryCalendarID = "primary"
	DefaultTokenPath  = "token.json"
)

// ICalendar is the subset of Google Calendar the service uses.
type ICalendar interface {
	CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error)
	DeleteEvent(ctx context.Context, calendarID, eventID string) error
	ListEvents(ctx context.Context, req ListEventsRequest) ([]Event, error)
}

var _ ICalendar = (*Client)(nil)
