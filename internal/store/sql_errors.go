package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// ErrorClassifier inspects driver-level errors and recognises the conditions
// the repositories care about. The unique constraint is the authoritative
// guard against duplicate emails and duplicate per-owner item names, so a
// violation detected here is upgraded to the matching domain sentinel
// instead of surfacing as an internal error.
type ErrorClassifier interface {
	// IsUniqueViolation reports whether err was caused by a unique
	// constraint violation.
	IsUniqueViolation(err error) bool
}

// PostgresErrorClassifier implements [ErrorClassifier] for PostgreSQL by
// unwrapping *pgconn.PgError and matching SQLSTATE codes.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// IsUniqueViolation implements [ErrorClassifier]. It reports whether err is a
// PostgreSQL unique_violation (SQLSTATE 23505).
func (c *PostgresErrorClassifier) IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.UniqueViolation
	}

	return false
}

// SQLiteErrorClassifier implements [ErrorClassifier] for SQLite by
// unwrapping sqlite3.Error and matching the extended constraint codes.
type SQLiteErrorClassifier struct{}

// NewSQLiteErrorClassifier constructs a [SQLiteErrorClassifier] ready for use.
func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// IsUniqueViolation implements [ErrorClassifier]. It reports whether err is a
// SQLite UNIQUE or PRIMARY KEY constraint violation.
func (c *SQLiteErrorClassifier) IsUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}

	return false
}
