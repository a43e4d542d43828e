package config

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App        AppConfig
	DB         DBConfig
	Redis      RedisConfig
	Validation ValidationConfig
}

type AppConfig struct {
	Port           string
	Env            string
	LogLevel       string
	AllowedOrigins []string
}

type DBConfig struct {
	Driver         string
	Host           string
	Port           string
	User           string
	Password       string
	Name           string
	SQLitePath     string
	MigrateOnStart bool
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     string
	Password string
	DB       int
	ListTTL  time.Duration
}

// ValidationConfig holds the inclusive numeric bounds enforced on create.
type ValidationConfig struct {
	PatientAgeMin         int
	PatientAgeMax         int
	ReceptionistSalaryMin float64
	ReceptionistSalaryMax float64
}

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://127.0.0.1:5500")

	v.SetDefault("DB_DRIVER", DriverPostgres)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SQLITE_PATH", "clinic.db")
	v.SetDefault("DB_MIGRATE_ON_START", true)

	v.SetDefault("REDIS_ENABLED", false)
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_LIST_TTL", "5m")

	v.SetDefault("VALIDATION_PATIENT_AGE_MIN", 0)
	v.SetDefault("VALIDATION_PATIENT_AGE_MAX", 3000)
	v.SetDefault("VALIDATION_RECEPTIONIST_SALARY_MIN", 0)
	v.SetDefault("VALIDATION_RECEPTIONIST_SALARY_MAX", 5000)
}

// LoadConfig reads .env (if present) and the process environment.
func LoadConfig() (*Config, error) {
	return load(".env")
}

func load(envFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigFile(envFile)
	v.SetConfigType("env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	listTTL, err := time.ParseDuration(v.GetString("REDIS_LIST_TTL"))
	if err != nil {
		listTTL = 5 * time.Minute
	}

	config := &Config{
		App: AppConfig{
			Port:           v.GetString("APP_PORT"),
			Env:            v.GetString("APP_ENV"),
			LogLevel:       v.GetString("LOG_LEVEL"),
			AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		DB: DBConfig{
			Driver:         strings.ToLower(v.GetString("DB_DRIVER")),
			Host:           v.GetString("DB_HOST"),
			Port:           v.GetString("DB_PORT"),
			User:           v.GetString("DB_USER"),
			Password:       v.GetString("DB_PASSWORD"),
			Name:           v.GetString("DB_NAME"),
			SQLitePath:     v.GetString("DB_SQLITE_PATH"),
			MigrateOnStart: v.GetBool("DB_MIGRATE_ON_START"),
		},
		Redis: RedisConfig{
			Enabled:  v.GetBool("REDIS_ENABLED"),
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
			ListTTL:  listTTL,
		},
		Validation: ValidationConfig{
			PatientAgeMin:         v.GetInt("VALIDATION_PATIENT_AGE_MIN"),
			PatientAgeMax:         v.GetInt("VALIDATION_PATIENT_AGE_MAX"),
			ReceptionistSalaryMin: v.GetFloat64("VALIDATION_RECEPTIONIST_SALARY_MIN"),
			ReceptionistSalaryMax: v.GetFloat64("VALIDATION_RECEPTIONIST_SALARY_MAX"),
		},
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) validate() error {
	switch c.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return errors.New("DB_DRIVER must be one of postgres, sqlite")
	}
	if c.Validation.PatientAgeMin > c.Validation.PatientAgeMax {
		return errors.New("VALIDATION_PATIENT_AGE_MIN must not exceed VALIDATION_PATIENT_AGE_MAX")
	}
	if c.Validation.ReceptionistSalaryMin > c.Validation.ReceptionistSalaryMax {
		return errors.New("VALIDATION_RECEPTIONIST_SALARY_MIN must not exceed VALIDATION_RECEPTIONIST_SALARY_MAX")
	}
	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
