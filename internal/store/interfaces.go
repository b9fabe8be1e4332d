package store

import (
	"context"
	"time"

	"accountgate/models"
)

// AccountRepository provides persistence operations for account records.
type AccountRepository interface {
	// CreateAccount persists a new account and returns it with
	// server-assigned fields populated. Returns
	// [ErrLoginAlreadyRegistered] when the login is already taken.
	CreateAccount(ctx context.Context, account models.Account) (models.Account, error)

	// FindAccountByLogin looks an account up by its unique login.
	// Returns [ErrNoAccountWasFound] when no record matches.
	FindAccountByLogin(ctx context.Context, login string) (models.Account, error)

	// FindAccountByID looks an account up by its internal identifier.
	// Returns [ErrNoAccountWasFound] when no record matches.
	FindAccountByID(ctx context.Context, accountID int64) (models.Account, error)

	// ListAccounts returns all accounts matching the filter,
	// ordered by login.
	ListAccounts(ctx context.Context, filter models.AccountFilter) ([]models.Account, error)
}

// AuditRepository provides append and retention operations for the audit log.
type AuditRepository interface {
	// AppendEvent persists a single audit event.
	AppendEvent(ctx context.Context, event models.AuditEvent) error

	// DeleteEventsBefore removes all events older than cutoff and returns
	// the number of deleted rows.
	DeleteEventsBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// Pinger reports backing-store liveness. Implemented by [DB] and consumed by
// the health endpoints.
type Pinger interface {
	Ping(ctx context.Context) error
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying. See [PostgresErrorClassifier] for the PostgreSQL implementation.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
