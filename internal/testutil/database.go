// Package testutil holds fixtures shared by package tests.
package testutil

import (
	"testing"

	"clinic-records/config"
	"clinic-records/internal/infrastructure/database"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewTestDB returns a migrated, private in-memory SQLite store.
func NewTestDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := database.NewSQLiteConnection(":memory:", logger.Silent)
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

// CloseDB closes db's pool so every later query fails.
func CloseDB(t testing.TB, db *gorm.DB) {
	t.Helper()

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())
}

// DefaultConfig returns the configuration defaults without reading the environment.
func DefaultConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Port:           "8080",
			Env:            "test",
			LogLevel:       "error",
			AllowedOrigins: []string{"http://localhost:3000", "http://127.0.0.1:5500"},
		},
		DB: config.DBConfig{Driver: config.DriverSQLite, SQLitePath: ":memory:"},
		Validation: config.ValidationConfig{
			PatientAgeMin:         0,
			PatientAgeMax:         3000,
			ReceptionistSalaryMin: 0,
			ReceptionistSalaryMax: 5000,
		},
	}
}
