package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/items-api/internal/config"
	"github.com/MKhiriev/items-api/internal/logger"
	"github.com/MKhiriev/items-api/migrations"
	"github.com/Masterminds/squirrel"
)

// DB wraps *sql.DB with the driver-specific pieces the repositories need:
// a squirrel statement builder configured with the right placeholder format
// and an error classifier that recognises constraint violations.
type DB struct {
	*sql.DB

	sb              squirrel.StatementBuilderType
	errorClassifier ErrorClassifier
	dialect         string
	logger          *logger.Logger
}

// NewConnect opens a database connection for the configured driver.
// Supported drivers are "pgx" (PostgreSQL) and "sqlite3".
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case "pgx":
		return NewConnectPostgres(ctx, cfg, log)
	case "sqlite3":
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("unsupported database driver: %q", cfg.Driver)
	}
}

// Migrate applies all pending schema migrations for this connection's dialect.
// Called once at startup; creates the users and items tables if absent.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}
