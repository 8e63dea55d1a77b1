package database

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/erickazee/jobtrack/internal/models"
)

// Connect opens the Postgres connection and migrates the schema. The DSN
// comes from configuration, never from source.
func Connect(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	log.Println("Database connection established")

	// Migration: creates/updates the tables in Postgres automatically
	if err := db.AutoMigrate(
		&models.User{},
		&models.JobApplication{},
		&models.ResumeVersion{},
		&models.ApplicationEvent{},
	); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}
