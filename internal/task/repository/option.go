package repository

// Order is the sort applied by ListTasks. Ties break on id.
type Order string

const (
	OrderCreatedAsc  Order = "created_at ASC"
	OrderCreatedDesc Order = "created_at DESC"
)

type CreateTaskOptions struct {
	Title string
}

// GetOneTaskOptions filters a single lookup. Non-empty fields are ANDed.
// TitleContains is a case-insensitive substring match; the oldest match wins.
type GetOneTaskOptions struct {
	ID            string
	TitleContains string
}

type ListTasksOptions struct {
	Completed *bool
	Order     Order
}

type UpdateTaskOptions struct {
	ID        string
	Completed bool
}
