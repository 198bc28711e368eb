// Package testutil holds fixtures shared by service and handler tests.
package testutil

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/skillswap-api/internal/database"
	"github.com/yukikurage/skillswap-api/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB opens a migrated in-memory SQLite database that is closed when the
// test ends.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// Every connection to ":memory:" gets its own database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	require.NoError(t, database.Migrate(db, zerolog.Nop()))
	return db
}

// CreateUser inserts a public user with the given name and email.
func CreateUser(t *testing.T, db *gorm.DB, name, email string) *models.User {
	t.Helper()

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: "hashedpassword",
		IsPublic:     true,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// Reload reads the user's current row.
func Reload(t *testing.T, db *gorm.DB, id string) *models.User {
	t.Helper()

	var user models.User
	require.NoError(t, db.Where("id = ?", id).First(&user).Error)
	return &user
}

// Backdate moves the created_at of the row with the given id into the past.
func Backdate(t *testing.T, db *gorm.DB, model any, id string, age time.Duration) {
	t.Helper()

	require.NoError(t, db.Model(model).Where("id = ?", id).
		Update("created_at", time.Now().Add(-age)).Error)
}
