package database

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))
	return db
}

func TestDatabasePing(t *testing.T) {
	db := setupTestDB(t)

	currentDB := New(db)

	require.NoError(t, currentDB.Ping())
	require.NotNil(t, currentDB.UserRepo())
	require.NotNil(t, currentDB.PostRepo())
	require.NotNil(t, currentDB.TagRepo())
}
