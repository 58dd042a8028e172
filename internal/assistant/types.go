package assistant

import (
	"encoding/json"
	"time"
)

// ResponseType tags the two shapes of a structured response.
type ResponseType string

const (
	ResponseMessage ResponseType = "message"
	ResponseAction  ResponseType = "action"
)

// Response is either a plain message or an action. Exactly one of Message
// and Action is meaningful, selected by Type.
type Response struct {
	Type    ResponseType
	Message string
	Action  Action
}

// NewMessage wraps text as a message response.
func NewMessage(text string) Response {
	return Response{Type: ResponseMessage, Message: text}
}

// NewAction wraps an action response.
func NewAction(a Action) Response {
	return Response{Type: ResponseAction, Action: a}
}

func (r Response) MarshalJSON() ([]byte, error) {
	if r.Type == ResponseAction {
		return json.Marshal(struct {
			Type    ResponseType `json:"type"`
			Content Action       `json:"content"`
		}{r.Type, r.Action})
	}
	return json.Marshal(struct {
		Type    ResponseType `json:"type"`
		Content string       `json:"content"`
	}{ResponseMessage, r.Message})
}

// ActionKind names one of the six supported operations.
type ActionKind string

const (
	ActionAddTask         ActionKind = "add_task"
	ActionCompleteTask    ActionKind = "complete_task"
	ActionDeleteTask      ActionKind = "delete_task"
	ActionGetTasks        ActionKind = "get_tasks"
	ActionScheduleMeeting ActionKind = "schedule_meeting"
	ActionGetMeetings     ActionKind = "get_meetings"
	ActionDeleteMeeting   ActionKind = "delete_meeting"
)

// Action is the tagged payload of an action response.
//
//	add_task, complete_task, delete_task: Task
//	delete_meeting:                       Meeting (title query)
//	schedule_meeting:                     Draft before date resolution, Slot after
//	get_tasks, get_meetings:              no fields
type Action struct {
	Kind    ActionKind
	Task    string
	Meeting string
	Draft   *MeetingDraft
	Slot    *MeetingSlot
}

// MeetingDraft is a meeting as the model describes it.
type MeetingDraft struct {
	Title    string `json:"title"`
	DateInfo string `json:"date_info"`
}

// MeetingSlot is a meeting with resolved times.
type MeetingSlot struct {
	Title     string    `json:"title"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

func (a Action) MarshalJSON() ([]byte, error) {
	switch a.Kind {
	case ActionAddTask, ActionCompleteTask, ActionDeleteTask:
		return json.Marshal(struct {
			Action ActionKind `json:"action"`
			Task   string     `json:"task"`
		}{a.Kind, a.Task})
	case ActionDeleteMeeting:
		return json.Marshal(struct {
			Action  ActionKind `json:"action"`
			Meeting string     `json:"meeting"`
		}{a.Kind, a.Meeting})
	case ActionScheduleMeeting:
		var meeting any = a.Draft
		if a.Slot != nil {
			meeting = a.Slot
		}
		return json.Marshal(struct {
			Action  ActionKind `json:"action"`
			Meeting any        `json:"meeting"`
		}{a.Kind, meeting})
	default:
		return json.Marshal(struct {
			Action ActionKind `json:"action"`
		}{a.Kind})
	}
}

type ChatInput struct {
	Message string
}

// ChatOutput is what a transport renders back to the user.
type ChatOutput struct {
	Response Response
}
