package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	meetingMemory "personal-assistant/internal/meeting/repository/memory"
	"personal-assistant/internal/model"
	"personal-assistant/internal/router"
	taskRepo "personal-assistant/internal/task/repository"
	taskMemory "personal-assistant/internal/task/repository/memory"
	"personal-assistant/pkg/datemath"
	"personal-assistant/pkg/gcalendar"
	"personal-assistant/pkg/llmprovider"
	"personal-assistant/pkg/log"
)

// Monday 2024-06-10 09:30 UTC.
var testNow = time.Date(2024, 6, 10, 9, 30, 0, 0, time.UTC)

// scriptedProvider replies with a fixed text, or fails.
type scriptedProvider struct {
	reply    string
	err      error
	calls    int
	lastUser string
}

func (p *scriptedProvider) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	p.calls++
	if len(req.Messages) > 0 {
		p.lastUser = req.Messages[len(req.Messages)-1].Text
	}
	if p.err != nil {
		return nil, p.err
	}
	return &llmprovider.Response{Text: p.reply, ProviderName: "scripted", Usage: &llmprovider.Usage{}}, nil
}

func (p *scriptedProvider) Name() string  { return "scripted" }
func (p *scriptedProvider) Model() string { return "scripted-1" }

type mockCalendar struct {
	created   []gcalendar.CreateEventRequest
	deleted   []string
	createErr error
}

func (m *mockCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	m.created = append(m.created, req)
	return &gcalendar.Event{ID: "evt-1", Summary: req.Summary}, nil
}

func (m *mockCalendar) DeleteEvent(ctx context.Context, calendarID, eventID string) error {
	m.deleted = append(m.deleted, eventID)
	return nil
}

func (m *mockCalendar) ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error) {
	return nil, nil
}

// failingTasks fails every write.
type failingTasks struct {
	taskRepo.Repository
}

func (failingTasks) CreateTask(ctx context.Context, opt taskRepo.CreateTaskOptions) (model.Task, error) {
	return model.Task{}, errors.New("connection refused")
}

type fixture struct {
	uc       *implUseCase
	provider *scriptedProvider
	calendar *mockCalendar
}

func newFixture(t *testing.T, reply string) fixture {
	t.Helper()

	parser, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}

	provider := &scriptedProvider{reply: reply}
	manager := llmprovider.NewManager(
		[]llmprovider.Provider{provider},
		&llmprovider.Config{RetryAttempts: 1},
		log.NewNop(),
	)

	uc := New(log.NewNop(), manager, router.New(), parser, taskMemory.New(), meetingMemory.New(), nil, "")
	uc.now = func() time.Time { return testNow }

	return fixture{uc: uc, provider: provider}
}

func (f *fixture) withCalendar() *mockCalendar {
	f.calendar = &mockCalendar{}
	f.uc.calendar = f.calendar
	return f.calendar
}
