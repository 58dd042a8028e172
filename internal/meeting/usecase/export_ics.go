package usecase

import (
	"bytes"
	"context"
	"fmt"

	"personal-assistant/internal/meeting"
	repo "personal-assistant/internal/meeting/repository"
	"personal-assistant/internal/model"

	"github.com/emersion/go-ical"
)

const (
	icsProductID = "-//personal-assistant//meetings//EN"
	icsVersion   = "2.0"
	icsUIDDomain = "personal-assistant"
)

// ExportICS renders every meeting as an iCalendar feed.
func (uc *implUseCase) ExportICS(ctx context.Context, sc model.Scope) (meeting.ExportICSOutput, error) {
	meetings, err := uc.repo.ListMeetings(ctx, repo.ListMeetingsOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ExportICS ListMeetings: %v", err)
		return meeting.ExportICSOutput{}, err
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropProductID, icsProductID)
	cal.Props.SetText(ical.PropVersion, icsVersion)

	stamp := uc.now().UTC()
	for _, m := range meetings {
		event := ical.NewEvent()
		event.Props.SetText(ical.PropUID, fmt.Sprintf("%s@%s", m.ID, icsUIDDomain))
		event.Props.SetDateTime(ical.PropDateTimeStamp, stamp)
		event.Props.SetText(ical.PropSummary, m.Title)
		event.Props.SetDateTime(ical.PropDateTimeStart, m.StartTime.UTC())
		event.Props.SetDateTime(ical.PropDateTimeEnd, m.EndTime.UTC())
		cal.Children = append(cal.Children, event.Component)
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		uc.l.Errorf(ctx, "uc.ExportICS Encode: %v", err)
		return meeting.ExportICSOutput{}, meeting.ErrExportFailed
	}

	return meeting.ExportICSOutput{Calendar: buf.Bytes()}, nil
}
