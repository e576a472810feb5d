package db_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/saadjs/healthlog/internal/db"
)

func TestOpenKeepsPathWithURIMetacharacters(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	dbPath := filepath.Join(dir, "odd?name#1%.db")
	sqldb, err := db.Open(dbPath)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}

	var mode string
	if err := sqldb.QueryRow(`PRAGMA journal_mode`).Scan(&mode); err != nil {
		t.Fatalf("read journal mode: %v", err)
	}
	if mode != "wal" {
		t.Fatalf("expected wal journal mode, got %q", mode)
	}
	if err := sqldb.Close(); err != nil {
		t.Fatalf("close db: %v", err)
	}

	if _, err := os.Stat(dbPath); err != nil {
		t.Fatalf("expected database at %s: %v", dbPath, err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	for _, e := range entries {
		if e.Name() == "odd" {
			t.Fatalf("expected no truncated database file, found %s", e.Name())
		}
	}
}
