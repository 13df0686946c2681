package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const sqliteDriverName = "sqlite"

// memoryDSN opens a private in-memory database: nothing is written to disk
// and the ledger disappears with the process.
const memoryDSN = ":memory:"

// InitDB opens the in-memory SQLite database backing the session ledger and
// ensures tables exist.
func InitDB() (*sql.DB, error) {
	db, err := sql.Open(sqliteDriverName, memoryDSN)
	if err != nil {
		return nil, fmt.Errorf("open in-memory sqlite: %w", err)
	}

	// A single connection is required for :memory:, every additional
	// connection would open its own empty database.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set PRAGMA foreign_keys=ON: %w", err)
	}
	if _, err := db.Exec("PRAGMA busy_timeout = 5000;"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set PRAGMA busy_timeout=5000: %w", err)
	}

	if err := ensureSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	// Fail fast if the DB cannot be reached
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	return db, nil
}

// seq carries insertion order; entry_id stays the external identifier.
const schemaHistoryEntries = `
CREATE TABLE IF NOT EXISTS history_entries (
    seq INTEGER PRIMARY KEY AUTOINCREMENT,
    entry_id TEXT UNIQUE NOT NULL,
    recorded_at TIMESTAMP NOT NULL,
    category TEXT NOT NULL,
    input TEXT NOT NULL,
    result TEXT NOT NULL
);
`

func ensureSchema(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin schema transaction: %w", err)
	}
	defer func() {
		// In case of panic, rollback to avoid leaving an open transaction
		_ = tx.Rollback()
	}()

	for i, stmt := range []string{
		schemaHistoryEntries,
	} {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("apply schema statement %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema transaction: %w", err)
	}
	return nil
}
