package assistant

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestParseResponse(t *testing.T) {
	start := time.Date(2024, 12, 15, 14, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		in   string
		want Response
	}{
		{
			name: "message",
			in:   `{"type":"message","content":"sure"}`,
			want: NewMessage("sure"),
		},
		{
			name: "add task",
			in:   `{"type":"action","content":{"action":"add_task","task":"buy milk"}}`,
			want: NewAction(Action{Kind: ActionAddTask, Task: "buy milk"}),
		},
		{
			name: "complete task trims",
			in:   `{"type":"action","content":{"action":"complete_task","task":"  milk "}}`,
			want: NewAction(Action{Kind: ActionCompleteTask, Task: "milk"}),
		},
		{
			name: "delete task",
			in:   `{"type":"action","content":{"action":"delete_task","task":"milk"}}`,
			want: NewAction(Action{Kind: ActionDeleteTask, Task: "milk"}),
		},
		{
			name: "get tasks",
			in:   `{"type":"action","content":{"action":"get_tasks"}}`,
			want: NewAction(Action{Kind: ActionGetTasks}),
		},
		{
			name: "get meetings",
			in:   `{"type":"action","content":{"action":"get_meetings"}}`,
			want: NewAction(Action{Kind: ActionGetMeetings}),
		},
		{
			name: "delete meeting",
			in:   `{"type":"action","content":{"action":"delete_meeting","meeting":"standup"}}`,
			want: NewAction(Action{Kind: ActionDeleteMeeting, Meeting: "standup"}),
		},
		{
			name: "schedule draft",
			in:   `{"type":"action","content":{"action":"schedule_meeting","meeting":{"title":"Meeting with Bob","date_info":"tomorrow at 3pm"}}}`,
			want: NewAction(Action{Kind: ActionScheduleMeeting, Draft: &MeetingDraft{Title: "Meeting with Bob", DateInfo: "tomorrow at 3pm"}}),
		},
		{
			name: "schedule resolved",
			in:   `{"type":"action","content":{"action":"schedule_meeting","meeting":{"title":"Sync","start_time":"2024-12-15T14:00:00Z","end_time":"2024-12-15T15:00:00Z"}}}`,
			want: NewAction(Action{Kind: ActionScheduleMeeting, Slot: &MeetingSlot{Title: "Sync", StartTime: start, EndTime: start.Add(time.Hour)}}),
		},
		{
			name: "fenced",
			in:   "Here you go:\n```json\n{\"type\":\"message\",\"content\":\"ok\"}\n```",
			want: NewMessage("ok"),
		},
		{
			name: "surrounding prose",
			in:   `Sure! {"type":"action","content":{"action":"get_tasks"}} Hope that helps.`,
			want: NewAction(Action{Kind: ActionGetTasks}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseResponse(tt.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			gotJSON, _ := json.Marshal(got)
			wantJSON, _ := json.Marshal(tt.want)
			if string(gotJSON) != string(wantJSON) {
				t.Errorf("got %s, want %s", gotJSON, wantJSON)
			}
		})
	}
}

func TestParseResponse_Malformed(t *testing.T) {
	inputs := map[string]string{
		"not json":               `I think you should buy milk`,
		"broken json":            `{"type":"message","content":`,
		"unknown type":           `{"type":"reply","content":"hi"}`,
		"missing content":        `{"type":"message"}`,
		"message not string":     `{"type":"message","content":{"text":"hi"}}`,
		"extra top field":        `{"type":"message","content":"hi","mood":"happy"}`,
		"unknown action":         `{"type":"action","content":{"action":"order_pizza"}}`,
		"task missing":           `{"type":"action","content":{"action":"add_task"}}`,
		"task empty":             `{"type":"action","content":{"action":"add_task","task":"  "}}`,
		"task not string":        `{"type":"action","content":{"action":"add_task","task":7}}`,
		"get tasks with args":    `{"type":"action","content":{"action":"get_tasks","task":"x"}}`,
		"extra action field":     `{"type":"action","content":{"action":"add_task","task":"x","due":"today"}}`,
		"delete meeting object":  `{"type":"action","content":{"action":"delete_meeting","meeting":{"title":"x"}}}`,
		"schedule no meeting":    `{"type":"action","content":{"action":"schedule_meeting"}}`,
		"schedule no title":      `{"type":"action","content":{"action":"schedule_meeting","meeting":{"date_info":"tomorrow"}}}`,
		"schedule mixed":         `{"type":"action","content":{"action":"schedule_meeting","meeting":{"title":"x","date_info":"tomorrow","start_time":"2024-12-15T14:00:00Z"}}}`,
		"schedule half slot":     `{"type":"action","content":{"action":"schedule_meeting","meeting":{"title":"x","start_time":"2024-12-15T14:00:00Z"}}}`,
		"schedule bad time":      `{"type":"action","content":{"action":"schedule_meeting","meeting":{"title":"x","start_time":"soon","end_time":"later"}}}`,
		"two objects":            `{"type":"message","content":"a"} {"type":"message","content":"b"}`,
		"null content":           `{"type":"message","content":null}`,
		"null action content":    `{"type":"action","content":null}`,
		"upper case keys":        `{"TYPE":"message","Content":"hi"}`,
		"upper case action key":  `{"type":"action","content":{"Action":"get_tasks"}}`,
		"upper case meeting key": `{"type":"action","content":{"action":"schedule_meeting","meeting":{"Title":"x","date_info":"tomorrow"}}}`,
	}

	for name, in := range inputs {
		t.Run(name, func(t *testing.T) {
			if _, err := ParseResponse(in); !errors.Is(err, ErrMalformedResponse) {
				t.Errorf("expected ErrMalformedResponse, got %v", err)
			}
		})
	}
}

func TestParseResponse_UnknownActionIsTagged(t *testing.T) {
	_, err := ParseResponse(`{"type":"action","content":{"action":"order_pizza"}}`)
	if !errors.Is(err, ErrUnknownAction) {
		t.Errorf("expected ErrUnknownAction, got %v", err)
	}
}

func TestResponse_MarshalJSON(t *testing.T) {
	start := time.Date(2024, 12, 15, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		in   Response
		want string
	}{
		{"message", NewMessage("hi"), `{"type":"message","content":"hi"}`},
		{"add task", NewAction(Action{Kind: ActionAddTask, Task: "buy milk"}), `{"type":"action","content":{"action":"add_task","task":"buy milk"}}`},
		{"get meetings", NewAction(Action{Kind: ActionGetMeetings}), `{"type":"action","content":{"action":"get_meetings"}}`},
		{
			"resolved meeting",
			NewAction(Action{Kind: ActionScheduleMeeting, Slot: &MeetingSlot{Title: "Bob", StartTime: start, EndTime: start.Add(time.Hour)}}),
			`{"type":"action","content":{"action":"schedule_meeting","meeting":{"title":"Bob","start_time":"2024-12-15T15:00:00Z","end_time":"2024-12-15T16:00:00Z"}}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.in)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestSanitizeJSONResponse(t *testing.T) {
	tests := map[string]string{
		"```json\n{\"a\":1}\n```":     `{"a":1}`,
		"```\n{\"a\":1}\n```":         `{"a":1}`,
		`prefix {"a":{"b":2}} suffix`: `{"a":{"b":2}}`,
		"no braces":                   "no braces",
	}
	for in, want := range tests {
		if got := sanitizeJSONResponse(in); got != want {
			t.Errorf("sanitizeJSONResponse(%q) = %q, want %q", in, got, want)
		}
	}
}
