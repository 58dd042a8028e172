package memory

import (
	"context"
	"sort"
	"strings"

	"personal-assistant/internal/model"
	repo "personal-assistant/internal/task/repository"
)

func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	row := taskRow{
		seq:       r.seq,
		id:        r.newID(),
		title:     opt.Title,
		createdAt: r.now(),
	}
	r.tasks = append(r.tasks, row)
	return row.toModel(), nil
}

// GetOneTask scans in insertion order, which is creation order.
func (r *implRepository) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	query := strings.ToLower(opt.TitleContains)
	for _, row := range r.tasks {
		if opt.ID != "" && row.id != opt.ID {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(row.title), query) {
			continue
		}
		return row.toModel(), nil
	}
	return model.Task{}, nil
}

func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, error) {
	r.mu.RLock()
	rows := make([]taskRow, 0, len(r.tasks))
	for _, row := range r.tasks {
		if opt.Completed != nil && row.completed != *opt.Completed {
			continue
		}
		rows = append(rows, row)
	}
	r.mu.RUnlock()

	desc := opt.Order == repo.OrderCreatedDesc
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if !a.createdAt.Equal(b.createdAt) {
			if desc {
				return a.createdAt.After(b.createdAt)
			}
			return a.createdAt.Before(b.createdAt)
		}
		if desc {
			return a.seq > b.seq
		}
		return a.seq < b.seq
	})

	tasks := make([]model.Task, len(rows))
	for i, row := range rows {
		tasks[i] = row.toModel()
	}
	return tasks, nil
}

func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.tasks {
		if r.tasks[i].id == opt.ID {
			r.tasks[i].completed = opt.Completed
			return r.tasks[i].toModel(), nil
		}
	}
	return model.Task{}, nil
}

func (r *implRepository) DeleteTask(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.tasks {
		if r.tasks[i].id == id {
			r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)
			return nil
		}
	}
	return nil
}

func (row taskRow) toModel() model.Task {
	return model.Task{
		ID:        row.id,
		Title:     row.title,
		Completed: row.completed,
		CreatedAt: row.createdAt,
	}
}
