// Package testutil provides shared helpers for package tests.
package testutil

import (
	"path/filepath"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/parlour-booking/internal/config"
	"github.com/BruksfildServices01/parlour-booking/internal/db"
	"github.com/BruksfildServices01/parlour-booking/internal/logger"
)

// DBConfig points at a fresh sqlite file inside the test's temp dir.
func DBConfig(t *testing.T, seed bool) config.DBConfig {
	t.Helper()

	return config.DBConfig{
		Driver:          "sqlite",
		URL:             filepath.Join(t.TempDir(), "velura-test.db"),
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Minute,
		ConnMaxIdleTime: time.Minute,
		Seed:            seed,
	}
}

// TestDB opens a migrated database that is closed when the test ends.
func TestDB(t *testing.T, seed bool) *gorm.DB {
	t.Helper()

	gdb, err := db.NewDB(DBConfig(t, seed), logger.Discard())
	if err != nil {
		t.Fatalf("NewDB: %v", err)
	}
	t.Cleanup(func() { _ = db.Close(gdb) })

	return gdb
}
