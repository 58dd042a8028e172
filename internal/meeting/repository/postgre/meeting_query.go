package postgre

import (
	"fmt"
	"strings"

	repo "personal-assistant/internal/meeting/repository"
)

func buildGetOneQuery(opt repo.GetOneMeetingOptions) (string, []any) {
	var conditions []string
	var args []any

	if opt.ID != "" {
		args = append(args, opt.ID)
		conditions = append(conditions, fmt.Sprintf("id = $%d", len(args)))
	}
	if opt.TitleContains != "" {
		args = append(args, opt.TitleContains)
		conditions = append(conditions, fmt.Sprintf("strpos(lower(title), lower($%d)) > 0", len(args)))
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

func buildListQuery(opt repo.ListMeetingsOptions) (string, []any) {
	var conditions []string
	var args []any

	if !opt.StartFrom.IsZero() {
		args = append(args, opt.StartFrom)
		conditions = append(conditions, fmt.Sprintf("start_time >= $%d", len(args)))
	}
	if !opt.StartBefore.IsZero() {
		args = append(args, opt.StartBefore)
		conditions = append(conditions, fmt.Sprintf("start_time < $%d", len(args)))
	}

	clause := "ORDER BY start_time ASC, created_at ASC"
	if len(conditions) > 0 {
		clause = "WHERE " + strings.Join(conditions, " AND ") + " " + clause
	}
	return clause, args
}
