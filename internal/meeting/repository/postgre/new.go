package postgre

import (
	"fmt"

	"personal-assistant/internal/meeting/repository"
	"personal-assistant/pkg/log"
	pkgPostgre "personal-assistant/pkg/postgre"

	"github.com/google/uuid"
)

type implRepository struct {
	db    pkgPostgre.DB
	l     log.Logger
	newID func() string
}

// New creates a new PostgreSQL-backed Repository for meetings.
func New(db pkgPostgre.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("meeting/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l, newID: uuid.NewString}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("meeting/repository/postgre.%s", method)
}
