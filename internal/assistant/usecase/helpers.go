package usecase

import (
	"time"

	"personal-assistant/internal/assistant"
)

const meetingDuration = time.Hour

// resolveSlot turns a schedule_meeting action into concrete times.
// ok is false when the times are unusable.
func (uc *implUseCase) resolveSlot(a assistant.Action) (slot assistant.MeetingSlot, ok bool) {
	switch {
	case a.Slot != nil:
		slot = *a.Slot
	case a.Draft != nil:
		start := uc.dateMath.Resolve(a.Draft.DateInfo, uc.now())
		slot = assistant.MeetingSlot{
			Title:     a.Draft.Title,
			StartTime: start,
			EndTime:   start.Add(meetingDuration),
		}
	default:
		return slot, false
	}
	return slot, validSlot(slot)
}

func validSlot(s assistant.MeetingSlot) bool {
	if s.StartTime.IsZero() || s.EndTime.Before(s.StartTime) {
		return false
	}
	// Years outside this range cannot be stored or rendered as RFC3339.
	y := s.StartTime.Year()
	return y >= 1 && y <= 9999 && s.EndTime.Year() <= 9999
}
