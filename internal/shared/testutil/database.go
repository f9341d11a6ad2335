package testutil

import (
	"testing"

	"github.com/sumcoda/boardbuddy/go-api-server/internal/shared/database"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// SetupTestDB opens an in-memory SQLite database migrated the same way the server migrates on startup.
// The database is closed when the test ends.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:                 &database.GormLogger{LogLevel: gormlogger.Silent},
		SkipDefaultTransaction: true,
	})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	// 단일 커넥션: 커넥션마다 별도의 in-memory DB 가 생성된다
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get database instance: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := database.Migrate(db, NewTestConfig()); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

// SetupDatabase wraps SetupTestDB for components that take the server's *database.DB.
func SetupDatabase(t *testing.T) *database.DB {
	t.Helper()
	return &database.DB{DB: SetupTestDB(t)}
}
