package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWithoutEnvFile(t *testing.T) {
	cfg, err := load(filepath.Join(t.TempDir(), ".env"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, []string{"http://localhost:3000", "http://127.0.0.1:5500"}, cfg.App.AllowedOrigins)
	assert.Equal(t, DriverPostgres, cfg.DB.Driver)
	assert.True(t, cfg.DB.MigrateOnStart)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, 5*time.Minute, cfg.Redis.ListTTL)
	assert.Equal(t, ValidationConfig{
		PatientAgeMin:         0,
		PatientAgeMax:         3000,
		ReceptionistSalaryMin: 0,
		ReceptionistSalaryMax: 5000,
	}, cfg.Validation)
}

func TestLoadFromEnvFileAndEnvironment(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	content := "APP_PORT=9090\nDB_DRIVER=sqlite\nDB_SQLITE_PATH=/tmp/clinic.db\nVALIDATION_PATIENT_AGE_MAX=130\nREDIS_LIST_TTL=30s\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o600))

	t.Setenv("VALIDATION_RECEPTIONIST_SALARY_MAX", "250000")
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://clinic.example , ")

	cfg, err := load(envFile)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, DriverSQLite, cfg.DB.Driver)
	assert.Equal(t, "/tmp/clinic.db", cfg.DB.SQLitePath)
	assert.Equal(t, 130, cfg.Validation.PatientAgeMax)
	assert.Equal(t, 250000.0, cfg.Validation.ReceptionistSalaryMax)
	assert.Equal(t, 30*time.Second, cfg.Redis.ListTTL)
	assert.Equal(t, []string{"https://clinic.example"}, cfg.App.AllowedOrigins)
}

func TestLoadRejectsInvalidSettings(t *testing.T) {
	dir := t.TempDir()

	t.Run("unknown driver", func(t *testing.T) {
		t.Setenv("DB_DRIVER", "oracle")
		_, err := load(filepath.Join(dir, ".env"))
		assert.Error(t, err)
	})

	t.Run("inverted bounds", func(t *testing.T) {
		t.Setenv("VALIDATION_PATIENT_AGE_MIN", "10")
		t.Setenv("VALIDATION_PATIENT_AGE_MAX", "5")
		_, err := load(filepath.Join(dir, ".env"))
		assert.Error(t, err)
	})
}
