package postgre

import (
	"fmt"
	"strings"

	repo "personal-assistant/internal/task/repository"
)

// buildGetOneQuery builds the WHERE clause + args for GetOneTask.
func buildGetOneQuery(opt repo.GetOneTaskOptions) (string, []any) {
	var conditions []string
	var args []any

	if opt.ID != "" {
		args = append(args, opt.ID)
		conditions = append(conditions, fmt.Sprintf("id = $%d", len(args)))
	}
	if opt.TitleContains != "" {
		// strpos avoids LIKE wildcards in user text
		args = append(args, opt.TitleContains)
		conditions = append(conditions, fmt.Sprintf("strpos(lower(title), lower($%d)) > 0", len(args)))
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildListQuery builds the WHERE + ORDER BY clause for ListTasks.
func buildListQuery(opt repo.ListTasksOptions) (string, []any) {
	var parts []string
	var args []any

	if opt.Completed != nil {
		args = append(args, *opt.Completed)
		parts = append(parts, fmt.Sprintf("WHERE completed = $%d", len(args)))
	}

	switch opt.Order {
	case repo.OrderCreatedDesc:
		parts = append(parts, "ORDER BY created_at DESC, id DESC")
	default:
		parts = append(parts, "ORDER BY created_at ASC, id ASC")
	}

	return strings.Join(parts, " "), args
}
