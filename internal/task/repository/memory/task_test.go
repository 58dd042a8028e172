package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"personal-assistant/internal/model"
	repo "personal-assistant/internal/task/repository"
)

// newTestRepo returns a store whose clock advances one second per insert.
func newTestRepo() *implRepository {
	base := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	n := 0
	r := New().(*implRepository)
	r.now = func() time.Time {
		n++
		return base.Add(time.Duration(n) * time.Second)
	}
	return r
}

func TestGetOneTask_FirstSubstringMatchInCreationOrder(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo()

	first, _ := r.CreateTask(ctx, repo.CreateTaskOptions{Title: "Buy MILK"})
	r.CreateTask(ctx, repo.CreateTaskOptions{Title: "buy milk again"})

	got, err := r.GetOneTask(ctx, repo.GetOneTaskOptions{TitleContains: "milk"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != first.ID {
		t.Errorf("expected first created task %q, got %q", first.Title, got.Title)
	}

	none, _ := r.GetOneTask(ctx, repo.GetOneTaskOptions{TitleContains: "bread"})
	if none.ID != "" {
		t.Errorf("expected zero value for no match, got %+v", none)
	}
}

func TestListTasks_Order(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo()

	for _, title := range []string{"a", "b", "c"} {
		r.CreateTask(ctx, repo.CreateTaskOptions{Title: title})
	}

	desc, _ := r.ListTasks(ctx, repo.ListTasksOptions{Order: repo.OrderCreatedDesc})
	if desc[0].Title != "c" || desc[2].Title != "a" {
		t.Errorf("expected newest first, got %v", titles(desc))
	}

	asc, _ := r.ListTasks(ctx, repo.ListTasksOptions{Order: repo.OrderCreatedAsc})
	if asc[0].Title != "a" || asc[2].Title != "c" {
		t.Errorf("expected oldest first, got %v", titles(asc))
	}
}

func TestListTasks_FilterCompleted(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo()

	done, _ := r.CreateTask(ctx, repo.CreateTaskOptions{Title: "done"})
	r.CreateTask(ctx, repo.CreateTaskOptions{Title: "open"})
	r.UpdateTask(ctx, repo.UpdateTaskOptions{ID: done.ID, Completed: true})

	completed := true
	got, _ := r.ListTasks(ctx, repo.ListTasksOptions{Completed: &completed})
	if len(got) != 1 || got[0].ID != done.ID {
		t.Errorf("expected only the completed task, got %v", titles(got))
	}
}

func TestUpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo()

	created, _ := r.CreateTask(ctx, repo.CreateTaskOptions{Title: "write report"})

	updated, _ := r.UpdateTask(ctx, repo.UpdateTaskOptions{ID: created.ID, Completed: true})
	if !updated.Completed || !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Errorf("unexpected update result %+v", updated)
	}

	missing, _ := r.UpdateTask(ctx, repo.UpdateTaskOptions{ID: "nope", Completed: true})
	if missing.ID != "" {
		t.Errorf("expected zero value for unknown id")
	}

	if err := r.DeleteTask(ctx, created.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	all, _ := r.ListTasks(ctx, repo.ListTasksOptions{})
	if len(all) != 0 {
		t.Errorf("expected empty store, got %v", titles(all))
	}
}

func TestConcurrentCreate(t *testing.T) {
	ctx := context.Background()
	r := New()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r.CreateTask(ctx, repo.CreateTaskOptions{Title: fmt.Sprintf("task %d", i)})
		}(i)
	}
	wg.Wait()

	all, _ := r.ListTasks(ctx, repo.ListTasksOptions{})
	if len(all) != 50 {
		t.Errorf("expected 50 tasks, got %d", len(all))
	}
}

func titles(tasks []model.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.Title
	}
	return out
}
