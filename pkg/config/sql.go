package config

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"task-report/internal/my_errors"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

var sqliteModeRe = regexp.MustCompile(`(^|[?&])mode=[^&]*`)

// InitSQL opens a database/sql handle for the mysql and sqlite drivers.
// SQLite databases are opened read-only and are never created.
func InitSQL(ctx context.Context, cfg Config) (*sqlx.DB, error) {
	var driverName, dsn string
	switch cfg.Driver {
	case DriverMySQL:
		driverName, dsn = "mysql", cfg.DSN
	case DriverSQLite:
		driverName, dsn = "sqlite", sqliteReadOnlyDSN(cfg.DSN)
	default:
		return nil, fmt.Errorf("%w: %q", my_errors.ErrUnsupportedDriver, cfg.Driver)
	}

	db, err := sqlx.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", driverName, err)
	}
	db.SetMaxOpenConns(int(cfg.MaxConns))
	db.SetMaxIdleConns(int(cfg.MaxConns))

	if err := pingWithAttempts(ctx, cfg.PingAttempts, db.PingContext); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// sqliteReadOnlyDSN turns a path or file: URI into a URI with mode=ro.
func sqliteReadOnlyDSN(dsn string) string {
	if !strings.HasPrefix(dsn, "file:") {
		dsn = "file:" + dsn
	}
	if sqliteModeRe.MatchString(dsn) {
		return sqliteModeRe.ReplaceAllString(dsn, "${1}mode=ro")
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&mode=ro"
	}
	return dsn + "?mode=ro"
}
