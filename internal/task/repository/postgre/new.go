package postgre

import (
	"fmt"

	"personal-assistant/internal/task/repository"
	"personal-assistant/pkg/log"
	pkgPostgre "personal-assistant/pkg/postgre"

	"github.com/google/uuid"
)

type implRepository struct {
	db    pkgPostgre.DB
	l     log.Logger
	newID func() string
}

// New creates a new PostgreSQL-backed Repository for tasks.
func New(db pkgPostgre.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("task/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l, newID: uuid.NewString}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("task/repository/postgre.%s", method)
}
