package meeting

import (
	"time"

	"personal-assistant/internal/model"
)

// ListInput optionally restricts the listing to meetings starting in [From, To).
type ListInput struct {
	From time.Time
	To   time.Time
}

// ListOutput holds meetings by ascending start time.
type ListOutput struct {
	Meetings []model.Meeting
}

type ExportICSOutput struct {
	Calendar []byte
}
