// Package testsupport holds helpers shared by store-backed tests.
package testsupport

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"scrobbler/internal/infra/persistence/postgres"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/dbresolver"
)

// sqliteParams serialize write transactions and wait on locks instead of failing with SQLITE_BUSY.
const sqliteParams = "?_txlock=immediate&_busy_timeout=5000&_journal_mode=WAL&_foreign_keys=1"

// MustOpenDB opens a migrated SQLite database in a per-test directory and registers cleanup.
func MustOpenDB(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "scrobbler.db") + sqliteParams
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError:         true,
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	if err != nil {
		t.Fatalf("gorm.Open: %v", err)
	}

	if err := postgres.Migrate(db); err != nil {
		t.Fatalf("postgres.Migrate: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db.DB: %v", err)
	}
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return db
}

// AttachLaggingReplica registers a replica on db the way the postgres connector does for
// configured replicas. The replica is a separate, empty migrated database that never
// receives writes, so plain reads routed to it see none of the primary's rows.
func AttachLaggingReplica(t testing.TB, db *gorm.DB) {
	t.Helper()

	replica, err := MustOpenDB(t).DB()
	if err != nil {
		t.Fatalf("replica db.DB: %v", err)
	}

	err = db.Use(dbresolver.Register(dbresolver.Config{
		Replicas: []gorm.Dialector{sqlite.New(sqlite.Config{Conn: replica})},
		Policy:   dbresolver.RandomPolicy{},
	}))
	if err != nil {
		t.Fatalf("db.Use(dbresolver): %v", err)
	}
}

// DiscardLogger returns a logger that drops everything.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
