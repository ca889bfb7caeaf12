// Package dbtest opens throwaway sqlite databases wired as the shared
// connection returned by db.GetDb.
package dbtest

import (
	"fmt"
	"styledecor/src/boot"
	"styledecor/src/db"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open creates a migrated in-memory database and installs it with db.NewDB.
// The connection is closed when the test ends.
func Open(t testing.TB) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %s", err.Error())
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("sql db: %s", err.Error())
	}
	sqlDB.SetMaxOpenConns(1)
	if err := boot.Migrate(gdb); err != nil {
		t.Fatalf("migrate: %s", err.Error())
	}
	db.NewDB(gdb)
	t.Cleanup(func() {
		sqlDB.Close()
	})
	return gdb
}
