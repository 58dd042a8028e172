package usecase

import (
	"context"
	"time"

	"personal-assistant/internal/assistant"
	meetingRepo "personal-assistant/internal/meeting/repository"
	"personal-assistant/internal/router"
	taskRepo "personal-assistant/internal/task/repository"
	"personal-assistant/pkg/datemath"
	"personal-assistant/pkg/gcalendar"
	"personal-assistant/pkg/llmprovider"
	pkgLog "personal-assistant/pkg/log"
)

// textGenerator is satisfied by *llmprovider.Manager.
type textGenerator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

type implUseCase struct {
	l          pkgLog.Logger
	llm        textGenerator
	router     router.Router
	dateMath   *datemath.Parser
	tasks      taskRepo.Repository
	meetings   meetingRepo.Repository
	calendar   gcalendar.ICalendar
	calendarID string
	now        func() time.Time
}

var (
	_ assistant.UseCase     = (*implUseCase)(nil)
	_ assistant.Interpreter = (*implUseCase)(nil)
	_ assistant.Dispatcher  = (*implUseCase)(nil)
)

// New creates the assistant UseCase. calendar may be nil, which disables
// mirroring meetings to Google Calendar.
func New(
	l pkgLog.Logger,
	llm textGenerator,
	rt router.Router,
	dateMath *datemath.Parser,
	tasks taskRepo.Repository,
	meetings meetingRepo.Repository,
	calendar gcalendar.ICalendar,
	calendarID string,
) *implUseCase {
	return &implUseCase{
		l:          l,
		llm:        llm,
		router:     rt,
		dateMath:   dateMath,
		tasks:      tasks,
		meetings:   meetings,
		calendar:   calendar,
		calendarID: calendarID,
		now:        time.Now,
	}
}
