package config

import (
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"task-report/internal/my_errors"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"

	FormatText = "text"
	FormatJSON = "json"
)

var sqlIdentRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

type Config struct {
	Driver string `validate:"required,oneof=postgres mysql sqlite"`
	DSN    string `validate:"required_unless=Driver postgres"`

	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPass     string
	PostgresDatabase string
	PostgresSSLMode  string

	UsersTable string `validate:"required,sqlident"`
	TasksTable string `validate:"required,sqlident"`

	Format   string `validate:"required,oneof=text json"`
	LogLevel string `validate:"required,oneof=debug info warn error"`

	MaxConns     int32         `validate:"gte=1"`
	MinConns     int32         `validate:"gte=0,ltefield=MaxConns"`
	PingAttempts int           `validate:"gte=1"`
	Timeout      time.Duration `validate:"gte=0"`
}

func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) > 0 {
		if err := godotenv.Load(envFiles...); err != nil {
			slog.Warn("env file not found", "files", envFiles)
		}
	} else {
		if err := godotenv.Load(); err != nil {
			slog.Debug("env file not found, using system environment variables")
		}
	}

	cfg := &Config{
		Driver:           strings.ToLower(getEnvWithDefault("REPORT_DB_DRIVER", DriverPostgres)),
		DSN:              os.Getenv("DATABASE_DSN"),
		PostgresHost:     os.Getenv("POSTGRES_HOST"),
		PostgresPort:     os.Getenv("POSTGRES_PORT"),
		PostgresUser:     os.Getenv("POSTGRES_USER"),
		PostgresPass:     os.Getenv("POSTGRES_PASSWORD"),
		PostgresDatabase: os.Getenv("POSTGRES_DB"),
		PostgresSSLMode:  getEnvWithDefault("POSTGRES_SSL_MODE", "disable"),
		UsersTable:       getEnvWithDefault("REPORT_USERS_TABLE", "users"),
		TasksTable:       getEnvWithDefault("REPORT_TASKS_TABLE", "tasks"),
		Format:           strings.ToLower(getEnvWithDefault("REPORT_FORMAT", FormatText)),
		LogLevel:         strings.ToLower(getEnvWithDefault("LOG_LEVEL", "info")),
		MaxConns:         int32(getEnvAsInt("DB_MAX_CONNS", 2)),
		MinConns:         int32(getEnvAsInt("DB_MIN_CONNS", 0)),
		PingAttempts:     getEnvAsInt("DB_PING_ATTEMPTS", 1),
		Timeout:          getEnvAsDuration("REPORT_TIMEOUT", 0),
	}

	return cfg, nil
}

// Validate checks the final configuration, after flag overrides.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.RegisterValidation("sqlident", func(fl validator.FieldLevel) bool {
		return sqlIdentRe.MatchString(fl.Field().String())
	}); err != nil {
		return fmt.Errorf("failed to register validation: %w", err)
	}

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", my_errors.ErrInvalidInput, err)
	}

	if c.Driver == DriverPostgres && c.DSN == "" {
		required := []struct {
			key   string
			value string
		}{
			{"POSTGRES_HOST", c.PostgresHost},
			{"POSTGRES_PORT", c.PostgresPort},
			{"POSTGRES_USER", c.PostgresUser},
			{"POSTGRES_PASSWORD", c.PostgresPass},
			{"POSTGRES_DB", c.PostgresDatabase},
		}
		for _, r := range required {
			if r.value == "" {
				return fmt.Errorf("%s: %w", r.key, my_errors.ErrEmptyField)
			}
		}
	}

	return nil
}

// PostgresDSN returns DSN when set, otherwise a keyword/value string built from POSTGRES_*.
func (c *Config) PostgresDSN() string {
	if c.DSN != "" {
		return c.DSN
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.PostgresHost, c.PostgresPort, c.PostgresUser, c.PostgresPass, c.PostgresDatabase, c.PostgresSSLMode,
	)
}

func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// for variables with default value
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	duration, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}

	return duration
}
