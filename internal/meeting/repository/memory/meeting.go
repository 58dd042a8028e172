package memory

import (
	"context"
	"sort"
	"strings"

	repo "personal-assistant/internal/meeting/repository"
	"personal-assistant/internal/model"
)

func (r *implRepository) CreateMeeting(ctx context.Context, opt repo.CreateMeetingOptions) (model.Meeting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m := model.Meeting{
		ID:        r.newID(),
		Title:     opt.Title,
		StartTime: opt.StartTime,
		EndTime:   opt.EndTime,
		CreatedAt: r.now(),
	}
	r.meetings = append(r.meetings, m)
	return m, nil
}

func (r *implRepository) GetOneMeeting(ctx context.Context, opt repo.GetOneMeetingOptions) (model.Meeting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	query := strings.ToLower(opt.TitleContains)
	for _, m := range r.meetings {
		if opt.ID != "" && m.ID != opt.ID {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(m.Title), query) {
			continue
		}
		return m, nil
	}
	return model.Meeting{}, nil
}

func (r *implRepository) ListMeetings(ctx context.Context, opt repo.ListMeetingsOptions) ([]model.Meeting, error) {
	r.mu.RLock()
	out := make([]model.Meeting, 0, len(r.meetings))
	for _, m := range r.meetings {
		if !opt.StartFrom.IsZero() && m.StartTime.Before(opt.StartFrom) {
			continue
		}
		if !opt.StartBefore.IsZero() && !m.StartTime.Before(opt.StartBefore) {
			continue
		}
		out = append(out, m)
	}
	r.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartTime.Before(out[j].StartTime)
	})
	return out, nil
}

func (r *implRepository) UpdateMeeting(ctx context.Context, opt repo.UpdateMeetingOptions) (model.Meeting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.meetings {
		if r.meetings[i].ID == opt.ID {
			r.meetings[i].CalendarEventID = opt.CalendarEventID
			return r.meetings[i], nil
		}
	}
	return model.Meeting{}, nil
}

func (r *implRepository) DeleteMeeting(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.meetings {
		if r.meetings[i].ID == id {
			r.meetings = append(r.meetings[:i], r.meetings[i+1:]...)
			return nil
		}
	}
	return nil
}
