package db

import (
	"testing"
	"time"
)

func TestInitDB(t *testing.T) {
	t.Parallel()

	conn, err := InitDB()
	if err != nil {
		t.Fatalf("InitDB: %v", err)
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			t.Errorf("close: %v", cerr)
		}
	}()

	now := time.Now().UTC().Format("2006-01-02 15:04:05")
	for _, id := range []string{"first", "second", "third"} {
		if _, err := conn.Exec(`
			INSERT INTO history_entries (entry_id, recorded_at, category, input, result)
			VALUES (?, ?, ?, ?, ?)
		`, id, now, "Temperature", "100.00 C -> F", "212.00"); err != nil {
			t.Fatalf("insert %q: %v", id, err)
		}
	}

	rows, err := conn.Query(`SELECT entry_id FROM history_entries ORDER BY seq ASC`)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	defer rows.Close()

	var got []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			t.Fatalf("scan: %v", err)
		}
		got = append(got, id)
	}
	if err := rows.Err(); err != nil {
		t.Fatalf("rows: %v", err)
	}

	want := []string{"first", "second", "third"}
	if len(got) != len(want) {
		t.Fatalf("got %d rows; want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d = %q; want %q (insertion order must be preserved)", i, got[i], want[i])
		}
	}
}
