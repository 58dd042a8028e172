package assistant

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"slices"
	"strings"
	"time"
)

var fencedJSON = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")

// ParseResponse strictly decodes model output into a Response.
// Markdown fences and prose around the JSON object are tolerated; anything
// that does not match one of the known shapes is ErrMalformedResponse.
// Keys must match exactly, including case, and message content must be a
// non-null string.
func ParseResponse(text string) (Response, error) {
	var raw struct {
		Type    ResponseType    `json:"type"`
		Content json.RawMessage `json:"content"`
	}
	if err := decodeStrict([]byte(sanitizeJSONResponse(text)), &raw, "type", "content"); err != nil {
		return Response{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if len(raw.Content) == 0 || bytes.Equal(raw.Content, jsonNull) {
		return Response{}, fmt.Errorf("%w: missing content", ErrMalformedResponse)
	}

	switch raw.Type {
	case ResponseMessage:
		var msg string
		if err := json.Unmarshal(raw.Content, &msg); err != nil {
			return Response{}, fmt.Errorf("%w: message content must be a string", ErrMalformedResponse)
		}
		return NewMessage(msg), nil
	case ResponseAction:
		action, err := parseAction(raw.Content)
		if err != nil {
			return Response{}, err
		}
		return NewAction(action), nil
	default:
		return Response{}, fmt.Errorf("%w: unknown type %q", ErrMalformedResponse, raw.Type)
	}
}

func parseAction(data json.RawMessage) (Action, error) {
	var raw struct {
		Action  ActionKind      `json:"action"`
		Task    *string         `json:"task"`
		Meeting json.RawMessage `json:"meeting"`
	}
	if err := decodeStrict(data, &raw, "action", "task", "meeting"); err != nil {
		return Action{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	a := Action{Kind: raw.Action}
	switch raw.Action {
	case ActionAddTask, ActionCompleteTask, ActionDeleteTask:
		if raw.Task == nil || strings.TrimSpace(*raw.Task) == "" || raw.Meeting != nil {
			return Action{}, fmt.Errorf("%w: %s needs a non-empty task", ErrMalformedResponse, raw.Action)
		}
		a.Task = strings.TrimSpace(*raw.Task)

	case ActionGetTasks, ActionGetMeetings:
		if raw.Task != nil || raw.Meeting != nil {
			return Action{}, fmt.Errorf("%w: %s takes no arguments", ErrMalformedResponse, raw.Action)
		}

	case ActionDeleteMeeting:
		var title string
		if raw.Task != nil || json.Unmarshal(raw.Meeting, &title) != nil || strings.TrimSpace(title) == "" {
			return Action{}, fmt.Errorf("%w: delete_meeting needs a meeting title", ErrMalformedResponse)
		}
		a.Meeting = strings.TrimSpace(title)

	case ActionScheduleMeeting:
		if raw.Task != nil {
			return Action{}, fmt.Errorf("%w: schedule_meeting takes no task", ErrMalformedResponse)
		}
		if err := parseMeeting(raw.Meeting, &a); err != nil {
			return Action{}, err
		}

	default:
		return Action{}, fmt.Errorf("%w: %w %q", ErrMalformedResponse, ErrUnknownAction, raw.Action)
	}
	return a, nil
}

// parseMeeting accepts either {title, date_info} or {title, start_time, end_time}.
func parseMeeting(data json.RawMessage, a *Action) error {
	var raw struct {
		Title     string  `json:"title"`
		DateInfo  *string `json:"date_info"`
		StartTime *string `json:"start_time"`
		EndTime   *string `json:"end_time"`
	}
	if len(data) == 0 {
		return fmt.Errorf("%w: schedule_meeting needs a meeting", ErrMalformedResponse)
	}
	if err := decodeStrict(data, &raw, "title", "date_info", "start_time", "end_time"); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	title := strings.TrimSpace(raw.Title)
	if title == "" {
		return fmt.Errorf("%w: meeting title is empty", ErrMalformedResponse)
	}

	switch {
	case raw.DateInfo != nil && raw.StartTime == nil && raw.EndTime == nil:
		a.Draft = &MeetingDraft{Title: title, DateInfo: *raw.DateInfo}
		return nil
	case raw.DateInfo == nil && raw.StartTime != nil && raw.EndTime != nil:
		start, err := time.Parse(time.RFC3339, *raw.StartTime)
		if err != nil {
			return fmt.Errorf("%w: start_time: %v", ErrMalformedResponse, err)
		}
		end, err := time.Parse(time.RFC3339, *raw.EndTime)
		if err != nil {
			return fmt.Errorf("%w: end_time: %v", ErrMalformedResponse, err)
		}
		a.Slot = &MeetingSlot{Title: title, StartTime: start, EndTime: end}
		return nil
	default:
		return fmt.Errorf("%w: meeting needs date_info or start_time and end_time", ErrMalformedResponse)
	}
}

var jsonNull = []byte("null")

// decodeStrict decodes a single JSON object into v. encoding/json folds key
// case, so keys are also checked verbatim against the allowed names.
func decodeStrict(data []byte, v any, keys ...string) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if dec.More() {
		return fmt.Errorf("trailing data after JSON value")
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	for name := range fields {
		if !slices.Contains(keys, name) {
			return fmt.Errorf("unknown field %q", name)
		}
	}
	return nil
}

// sanitizeJSONResponse removes markdown code fences and leading/trailing prose
// that LLMs often add around JSON output.
func sanitizeJSONResponse(text string) string {
	if m := fencedJSON.FindStringSubmatch(text); len(m) > 1 {
		return strings.TrimSpace(m[1])
	}

	start := strings.Index(text, "{")
	if start == -1 {
		return text
	}
	end := strings.LastIndex(text, "}")
	if end < start {
		return text
	}
	return strings.TrimSpace(text[start : end+1])
}
