package db

import (
	"context"
	"database/sql"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/CinisterOne/LWC/internal/ddl"
	"github.com/CinisterOne/LWC/internal/domain"
)

// OpenTestSQLite opens a hardened SQLite pool in t.TempDir() and registers
// cleanup.
func OpenTestSQLite(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.sqlite")

	pool, err := OpenSQLite(context.Background(), path)
	if err != nil {
		t.Fatalf("open test sqlite: %v", err)
	}
	t.Cleanup(func() { _ = pool.Close() })

	return pool
}

// OpenTestDatabase wraps a fresh test SQLite pool in a Database that logs
// nowhere.
func OpenTestDatabase(t *testing.T, prefix domain.PrefixSource) (*Database, *sql.DB) {
	t.Helper()

	pool := OpenTestSQLite(t)
	return New(ddl.SQLite, pool, prefix, slog.New(slog.DiscardHandler)), pool
}
