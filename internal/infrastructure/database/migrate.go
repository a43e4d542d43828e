package database

import (
	"embed"
	"errors"
	"fmt"
	"net"
	"net/url"

	"clinic-records/config"
	"clinic-records/internal/domain/entity"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// Migrate brings the schema up to date. Postgres uses the embedded SQL
// migrations; SQLite is created from the gorm models.
func Migrate(cfg config.DBConfig, db *gorm.DB) error {
	if cfg.Driver == config.DriverSQLite {
		return AutoMigrate(db)
	}
	return RunMigrations(cfg)
}

func RunMigrations(cfg config.DBConfig) error {
	src, err := iofs.New(migrationFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to load migrations: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, postgresURL(cfg))
	if err != nil {
		return fmt.Errorf("failed to init migrations: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to read migration version: %w", err)
	}
	logrus.Infof("Database schema at version %d (dirty=%t)", version, dirty)

	return nil
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.Doctor{},
		&entity.Patient{},
		&entity.Receptionist{},
		&entity.AuditLog{},
	)
}

func postgresURL(cfg config.DBConfig) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.User, cfg.Password),
		Host:     net.JoinHostPort(cfg.Host, cfg.Port),
		Path:     "/" + cfg.Name,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}
