package shared

import "testing"

func TestNewDatabase(t *testing.T) {
	t.Run("opens an in-memory database", func(t *testing.T) {
		db, err := NewDatabase(":memory:")
		if err != nil {
			t.Fatalf("failed to open database: %v", err)
		}
		defer db.Close()

		if err := db.Ping(); err != nil {
			t.Errorf("database should be reachable: %v", err)
		}
	})

	t.Run("applies the busy timeout", func(t *testing.T) {
		db, err := NewDatabase(":memory:")
		if err != nil {
			t.Fatalf("failed to open database: %v", err)
		}
		defer db.Close()

		var timeout int
		if err := db.QueryRow("PRAGMA busy_timeout").Scan(&timeout); err != nil {
			t.Fatalf("failed to read busy_timeout: %v", err)
		}
		if timeout != 5000 {
			t.Errorf("expected busy_timeout 5000, got %d", timeout)
		}
	})

	t.Run("rejects an unwritable path", func(t *testing.T) {
		if _, err := NewDatabase("/nonexistent-dir/predica.db"); err == nil {
			t.Error("expected error for unwritable database path")
		}
	})
}
