package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"personal-assistant/internal/meeting"
	repo "personal-assistant/internal/meeting/repository"
	"personal-assistant/internal/meeting/repository/memory"
	"personal-assistant/internal/model"
	"personal-assistant/pkg/log"

	"github.com/emersion/go-ical"
)

func seed(t *testing.T, r repo.Repository, title string, start time.Time) {
	t.Helper()
	if _, err := r.CreateMeeting(context.Background(), repo.CreateMeetingOptions{
		Title: title, StartTime: start, EndTime: start.Add(time.Hour),
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}
}

func TestList(t *testing.T) {
	ctx := context.Background()
	r := memory.New()
	base := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	seed(t, r, "second", base.Add(24*time.Hour))
	seed(t, r, "first", base)

	uc := New(r, log.NewNop())

	out, err := uc.List(ctx, model.Scope{}, meeting.ListInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Meetings) != 2 || out.Meetings[0].Title != "first" {
		t.Errorf("expected ascending start order, got %+v", out.Meetings)
	}

	day, _ := uc.List(ctx, model.Scope{}, meeting.ListInput{From: base, To: base.Add(24 * time.Hour)})
	if len(day.Meetings) != 1 || day.Meetings[0].Title != "first" {
		t.Errorf("expected only first in range, got %+v", day.Meetings)
	}

	_, err = uc.List(ctx, model.Scope{}, meeting.ListInput{From: base, To: base})
	if !errors.Is(err, meeting.ErrInvalidRange) {
		t.Errorf("expected ErrInvalidRange, got %v", err)
	}
}

func TestExportICS(t *testing.T) {
	ctx := context.Background()
	r := memory.New()
	start := time.Date(2024, 12, 15, 14, 0, 0, 0, time.UTC)
	seed(t, r, "Design review", start)

	uc := New(r, log.NewNop())
	uc.now = func() time.Time { return start.Add(-time.Hour) }

	out, err := uc.ExportICS(ctx, model.Scope{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	text := string(out.Calendar)
	if !strings.Contains(text, "BEGIN:VCALENDAR") || !strings.Contains(text, "SUMMARY:Design review") {
		t.Fatalf("unexpected calendar:\n%s", text)
	}

	cal, err := ical.NewDecoder(strings.NewReader(text)).Decode()
	if err != nil {
		t.Fatalf("generated feed does not decode: %v", err)
	}
	events := cal.Events()
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	gotStart, err := events[0].DateTimeStart(time.UTC)
	if err != nil || !gotStart.Equal(start) {
		t.Errorf("expected start %v, got %v (%v)", start, gotStart, err)
	}
}
