package http

import (
	"time"

	"personal-assistant/internal/meeting"
	"personal-assistant/internal/model"
	"personal-assistant/pkg/response"
)

// --- Request DTOs ---

type listReq struct {
	From string `form:"from"`
	To   string `form:"to"`

	from time.Time
	to   time.Time
}

func (r listReq) toInput() meeting.ListInput {
	return meeting.ListInput{From: r.from, To: r.to}
}

// --- Response DTOs ---

type meetingResp struct {
	ID        string             `json:"id"`
	Title     string             `json:"title"`
	StartTime response.Timestamp `json:"start_time" swaggertype:"string"`
	EndTime   response.Timestamp `json:"end_time" swaggertype:"string"`
}

func newMeetingResp(m model.Meeting) meetingResp {
	return meetingResp{
		ID:        m.ID,
		Title:     m.Title,
		StartTime: response.Timestamp(m.StartTime),
		EndTime:   response.Timestamp(m.EndTime),
	}
}

type listResp struct {
	Meetings []meetingResp `json:"meetings"`
}

func (h *handler) newListResp(out meeting.ListOutput) listResp {
	meetings := make([]meetingResp, len(out.Meetings))
	for i, m := range out.Meetings {
		meetings[i] = newMeetingResp(m)
	}
	return listResp{Meetings: meetings}
}
