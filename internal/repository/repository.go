package repository

import (
	"context"
	"database/sql"

	"unitdesk/internal/models"
)

// History is the append-only session ledger. Append never updates or removes
// existing rows; List returns entries in insertion order.
type History interface {
	Append(ctx context.Context, e models.HistoryEntry) error
	List(ctx context.Context) ([]models.HistoryEntry, error)
}

type Repository struct {
	History History
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		History: NewHistorySQLite(db),
	}
}
