package db

import (
	"path/filepath"
	"testing"
)

func TestInitDB_CreatesSchemaIdempotently(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dashboard.db")

	for i := 0; i < 2; i++ {
		conn, err := InitDB(path)
		if err != nil {
			t.Fatalf("InitDB() #%d error = %v", i+1, err)
		}
		for _, table := range []string{"kv_store", "display_state", "activity_events"} {
			var name string
			row := conn.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table)
			if err := row.Scan(&name); err != nil {
				t.Fatalf("table %s missing: %v", table, err)
			}
		}
		_ = conn.Close()
	}
}
