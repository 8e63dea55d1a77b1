package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/erickazee/jobtrack/internal/models"
)

// newTestDB opens a per-test in-memory SQLite database with the schema
// migrated. The pool is pinned to one connection so :memory: stays the same
// database across queries.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db := newEmptyTestDB(t)
	require.NoError(t, db.AutoMigrate(
		&models.JobApplication{},
		&models.ResumeVersion{},
		&models.ApplicationEvent{},
	))
	return db
}

// newEmptyTestDB opens the database without migrating, so every write fails
// with a missing-table error.
func newEmptyTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	return db
}
