package testutil

import (
	"blogly/db"
	"blogly/models"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// OpenDB opens a fresh in-memory SQLite database with the blogly schema applied.
// Every call gets its own database, closed when the test ends.
func OpenDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := db.SQLiteDSN("file:" + uuid.NewString() + "?mode=memory&cache=shared")
	d, err := db.Open(sqlite.Open(dsn))
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err = models.Migrate(d); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := d.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return d
}
