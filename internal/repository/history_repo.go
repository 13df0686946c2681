package repository

import (
	"context"
	"database/sql"
	"time"

	"unitdesk/internal/models"

	"github.com/google/uuid"
)

// SQLite TIMESTAMP format "YYYY-MM-DD HH:MM:SS".
const timestampLayout = "2006-01-02 15:04:05"

type HistorySQLite struct {
	db *sql.DB
}

func NewHistorySQLite(db *sql.DB) *HistorySQLite { return &HistorySQLite{db: db} }

// Append inserts a new ledger entry. If EntryID or RecordedAt are empty,
// they're set. Insertion order is carried by the table's autoincrement key,
// not by the timestamp, so entries recorded in the same second keep their
// relative order.
func (r *HistorySQLite) Append(ctx context.Context, e models.HistoryEntry) error {
	if e.EntryID == "" {
		e.EntryID = uuid.NewString()
	}
	if e.RecordedAt.IsZero() {
		e.RecordedAt = time.Now().UTC()
	} else {
		e.RecordedAt = e.RecordedAt.UTC()
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO history_entries (entry_id, recorded_at, category, input, result)
		VALUES (?, ?, ?, ?, ?)
	`,
		e.EntryID,
		e.RecordedAt.Format(timestampLayout),
		string(e.Category),
		e.Input,
		e.Result,
	)

	return err
}

// List returns every ledger entry in insertion order.
func (r *HistorySQLite) List(ctx context.Context) ([]models.HistoryEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT entry_id, recorded_at, category, input, result
		FROM history_entries
		ORDER BY seq ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.HistoryEntry, 0, 16)
	for rows.Next() {
		var (
			e        models.HistoryEntry
			category string
		)
		if err := rows.Scan(&e.EntryID, &e.RecordedAt, &category, &e.Input, &e.Result); err != nil {
			return nil, err
		}
		e.RecordedAt = e.RecordedAt.UTC()
		e.Category = models.Category(category)
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
