package store

import (
	"context"
	"database/sql"

	"accountgate/internal/logger"
	"accountgate/migrations"
)

// DB wraps the standard library connection pool together with the
// driver-specific error classifier and a logger. All repositories in this
// package operate through it.
type DB struct {
	*sql.DB

	// dialect is the goose dialect name of the active driver
	// ("pgx" or "sqlite3"). It selects the migration set to apply.
	dialect string

	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies all pending schema migrations for the active dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// ExecRetryContext runs ExecContext and re-issues the statement once when the
// driver's error classifier marks the failure as transient (connection loss,
// serialization rollback, deadlock). Drivers without a classifier never retry.
func (db *DB) ExecRetryContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	result, err := db.ExecContext(ctx, query, args...)
	if err == nil || db.errorClassificator == nil {
		return result, err
	}
	if db.errorClassificator.Classify(err) != Retryable {
		return result, err
	}

	db.logger.Warn().Err(err).Msg("retrying statement after transient database error")
	return db.ExecContext(ctx, query, args...)
}

// Ping verifies that the database connection is still alive.
func (db *DB) Ping(ctx context.Context) error {
	return db.PingContext(ctx)
}
