package postgre

import (
	"testing"
	"time"

	repo "personal-assistant/internal/meeting/repository"
)

func TestBuildListQuery(t *testing.T) {
	from := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		opt      repo.ListMeetingsOptions
		want     string
		wantArgs int
	}{
		{"open", repo.ListMeetingsOptions{}, "ORDER BY start_time ASC, created_at ASC", 0},
		{"from", repo.ListMeetingsOptions{StartFrom: from}, "WHERE start_time >= $1 ORDER BY start_time ASC, created_at ASC", 1},
		{
			"window",
			repo.ListMeetingsOptions{StartFrom: from, StartBefore: from.AddDate(0, 0, 1)},
			"WHERE start_time >= $1 AND start_time < $2 ORDER BY start_time ASC, created_at ASC",
			2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, args := buildListQuery(tt.opt)
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
			if len(args) != tt.wantArgs {
				t.Errorf("args = %d, want %d", len(args), tt.wantArgs)
			}
		})
	}
}

func TestBuildGetOneQuery_Title(t *testing.T) {
	where, args := buildGetOneQuery(repo.GetOneMeetingOptions{TitleContains: "Bob"})
	if where != "strpos(lower(title), lower($1)) > 0" || len(args) != 1 || args[0] != "Bob" {
		t.Errorf("unexpected %q %v", where, args)
	}
}
