package database

import (
	"testing"

	"subscription-tracker/internal/config"
	"subscription-tracker/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB opens a migrated in-memory SQLite database. The pool is held
// at one connection because every new :memory: connection is a new database.
func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := open(sqlite.Open(":memory:"), logger.Silent, &config.DatabaseConfig{
		MaxConnections: 1,
		MaxIdleConns:   1,
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := db.AutoMigrate(); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return db
}

// CreateTestUser inserts a user with a random display name
func CreateTestUser(t *testing.T, db *DB, email string) *models.User {
	t.Helper()

	user := &models.User{Email: email, DisplayName: gofakeit.Name()}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create test user: %v", err)
	}
	return user
}

// CleanupTestDB empties every owned table, children first
func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	for i := len(schema) - 1; i >= 0; i-- {
		err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(schema[i]).Error
		if err != nil {
			t.Logf("cleanup %T: %v", schema[i], err)
		}
	}
}
