package usecase

import (
	"context"
	"fmt"
	"strings"

	"personal-assistant/internal/assistant"
	meetingRepo "personal-assistant/internal/meeting/repository"
	"personal-assistant/internal/model"
	taskRepo "personal-assistant/internal/task/repository"
	"personal-assistant/pkg/gcalendar"
	"personal-assistant/pkg/metrics"
)

const (
	outcomeOK       = "ok"
	outcomeNotFound = "not_found"
	outcomeInvalid  = "invalid"
	outcomeError    = "error"
)

// Dispatch executes a single action. Not-found and bad dates are reported
// in the returned text; err is reserved for storage faults.
func (uc *implUseCase) Dispatch(ctx context.Context, a assistant.Action) (string, error) {
	text, outcome, err := uc.dispatch(ctx, a)
	if err != nil {
		outcome = outcomeError
	}
	metrics.IncrementActionDispatch(string(a.Kind), outcome)
	return text, err
}

func (uc *implUseCase) dispatch(ctx context.Context, a assistant.Action) (string, string, error) {
	switch a.Kind {
	case assistant.ActionAddTask:
		return uc.addTask(ctx, a.Task)
	case assistant.ActionCompleteTask:
		return uc.completeTask(ctx, a.Task)
	case assistant.ActionDeleteTask:
		return uc.deleteTask(ctx, a.Task)
	case assistant.ActionGetTasks:
		return uc.listTasks(ctx)
	case assistant.ActionScheduleMeeting:
		return uc.scheduleMeeting(ctx, a)
	case assistant.ActionGetMeetings:
		return uc.listMeetings(ctx)
	case assistant.ActionDeleteMeeting:
		return uc.deleteMeeting(ctx, a.Meeting)
	default:
		return "", outcomeInvalid, fmt.Errorf("%w: %q", assistant.ErrUnknownAction, a.Kind)
	}
}

func (uc *implUseCase) addTask(ctx context.Context, title string) (string, string, error) {
	t, err := uc.tasks.CreateTask(ctx, taskRepo.CreateTaskOptions{Title: title})
	if err != nil {
		uc.l.Errorf(ctx, "uc.addTask CreateTask: %v", err)
		return "", "", err
	}
	return fmt.Sprintf(assistant.MsgTaskAdded, t.Title), outcomeOK, nil
}

func (uc *implUseCase) completeTask(ctx context.Context, query string) (string, string, error) {
	t, err := uc.tasks.GetOneTask(ctx, taskRepo.GetOneTaskOptions{TitleContains: query})
	if err != nil {
		uc.l.Errorf(ctx, "uc.completeTask GetOneTask: %v", err)
		return "", "", err
	}
	if t.ID == "" {
		return fmt.Sprintf(assistant.MsgTaskNotFound, query), outcomeNotFound, nil
	}

	if !t.Completed {
		if _, err := uc.tasks.UpdateTask(ctx, taskRepo.UpdateTaskOptions{ID: t.ID, Completed: true}); err != nil {
			uc.l.Errorf(ctx, "uc.completeTask UpdateTask: %v", err)
			return "", "", err
		}
	}
	return fmt.Sprintf(assistant.MsgTaskCompleted, t.Title), outcomeOK, nil
}

func (uc *implUseCase) deleteTask(ctx context.Context, query string) (string, string, error) {
	t, err := uc.tasks.GetOneTask(ctx, taskRepo.GetOneTaskOptions{TitleContains: query})
	if err != nil {
		uc.l.Errorf(ctx, "uc.deleteTask GetOneTask: %v", err)
		return "", "", err
	}
	if t.ID == "" {
		return fmt.Sprintf(assistant.MsgTaskNotFound, query), outcomeNotFound, nil
	}

	if err := uc.tasks.DeleteTask(ctx, t.ID); err != nil {
		uc.l.Errorf(ctx, "uc.deleteTask DeleteTask: %v", err)
		return "", "", err
	}
	return fmt.Sprintf(assistant.MsgTaskDeleted, t.Title), outcomeOK, nil
}

func (uc *implUseCase) listTasks(ctx context.Context) (string, string, error) {
	tasks, err := uc.tasks.ListTasks(ctx, taskRepo.ListTasksOptions{Order: taskRepo.OrderCreatedAsc})
	if err != nil {
		uc.l.Errorf(ctx, "uc.listTasks ListTasks: %v", err)
		return "", "", err
	}
	if len(tasks) == 0 {
		return assistant.MsgNoTasks, outcomeOK, nil
	}

	lines := make([]string, 0, len(tasks)+1)
	lines = append(lines, assistant.MsgTasksHeader)
	for _, t := range tasks {
		status := assistant.StatusPending
		if t.Completed {
			status = assistant.StatusCompleted
		}
		lines = append(lines, fmt.Sprintf(assistant.MsgTaskLine, t.Title, status))
	}
	return strings.Join(lines, "\n"), outcomeOK, nil
}

func (uc *implUseCase) scheduleMeeting(ctx context.Context, a assistant.Action) (string, string, error) {
	slot, ok := uc.resolveSlot(a)
	if !ok {
		return assistant.MsgBadDate, outcomeInvalid, nil
	}

	m, err := uc.meetings.CreateMeeting(ctx, meetingRepo.CreateMeetingOptions{
		Title:     slot.Title,
		StartTime: slot.StartTime,
		EndTime:   slot.EndTime,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.scheduleMeeting CreateMeeting: %v", err)
		return "", "", err
	}

	uc.mirrorMeeting(ctx, m)
	return fmt.Sprintf(assistant.MsgMeetingAdded, m.Title), outcomeOK, nil
}

func (uc *implUseCase) listMeetings(ctx context.Context) (string, string, error) {
	meetings, err := uc.meetings.ListMeetings(ctx, meetingRepo.ListMeetingsOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "uc.listMeetings ListMeetings: %v", err)
		return "", "", err
	}
	if len(meetings) == 0 {
		return assistant.MsgNoMeetings, outcomeOK, nil
	}

	loc := uc.dateMath.Location()
	lines := make([]string, 0, len(meetings)+1)
	lines = append(lines, assistant.MsgMeetingsHeader)
	for _, m := range meetings {
		lines = append(lines, fmt.Sprintf(assistant.MsgMeetingLine, m.Title, m.StartTime.In(loc).Format(assistant.MeetingClock)))
	}
	return strings.Join(lines, "\n"), outcomeOK, nil
}

func (uc *implUseCase) deleteMeeting(ctx context.Context, query string) (string, string, error) {
	m, err := uc.meetings.GetOneMeeting(ctx, meetingRepo.GetOneMeetingOptions{TitleContains: query})
	if err != nil {
		uc.l.Errorf(ctx, "uc.deleteMeeting GetOneMeeting: %v", err)
		return "", "", err
	}
	if m.ID == "" {
		return fmt.Sprintf(assistant.MsgMeetingMissing, query), outcomeNotFound, nil
	}

	if err := uc.meetings.DeleteMeeting(ctx, m.ID); err != nil {
		uc.l.Errorf(ctx, "uc.deleteMeeting DeleteMeeting: %v", err)
		return "", "", err
	}

	uc.unmirrorMeeting(ctx, m)
	return fmt.Sprintf(assistant.MsgMeetingDeleted, m.Title), outcomeOK, nil
}

// mirrorMeeting copies a meeting to Google Calendar. Failures are logged only.
func (uc *implUseCase) mirrorMeeting(ctx context.Context, m model.Meeting) {
	if uc.calendar == nil {
		return
	}

	event, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID: uc.calendarID,
		Summary:    m.Title,
		StartTime:  m.StartTime,
		EndTime:    m.EndTime,
		Timezone:   uc.dateMath.Location().String(),
	})
	if err != nil {
		uc.l.Warnf(ctx, "uc.mirrorMeeting CreateEvent: %v", err)
		return
	}

	if _, err := uc.meetings.UpdateMeeting(ctx, meetingRepo.UpdateMeetingOptions{ID: m.ID, CalendarEventID: event.ID}); err != nil {
		uc.l.Warnf(ctx, "uc.mirrorMeeting UpdateMeeting: %v", err)
	}
}

func (uc *implUseCase) unmirrorMeeting(ctx context.Context, m model.Meeting) {
	if uc.calendar == nil || m.CalendarEventID == "" {
		return
	}
	if err := uc.calendar.DeleteEvent(ctx, uc.calendarID, m.CalendarEventID); err != nil {
		uc.l.Warnf(ctx, "uc.unmirrorMeeting DeleteEvent: %v", err)
	}
}
