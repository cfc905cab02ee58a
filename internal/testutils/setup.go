package testutils

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/Dishalex/PhotoShare/internal/db"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBSeq int64

// SetupDB opens a unique in-memory SQLite database with foreign keys on and migrates the
// full schema. The database is closed when the test ends.
func SetupDB(t *testing.T) *gorm.DB {
	t.Helper()

	seq := atomic.AddInt64(&testDBSeq, 1)
	dsn := fmt.Sprintf("file:ps_test_%d?mode=memory&cache=shared&_pragma=foreign_keys(1)", seq)
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := gdb.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		t.Fatalf("enable foreign keys: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return gdb
}
