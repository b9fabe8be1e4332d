package store

import (
	"context"
	"fmt"

	"accountgate/internal/config"
	"accountgate/internal/logger"
)

// Storages aggregates every repository of the application together with the
// shared database handle.
type Storages struct {
	AccountRepository AccountRepository
	AuditRepository   AuditRepository

	// DB is exposed for liveness checks (health endpoints ping through it).
	DB *DB
}

// NewStorages connects to the configured database backend, applies pending
// migrations, and wires all repositories.
//
// The backend is selected by cfg.DB.Driver: "pgx" (the default) or "sqlite3"
// for local runs.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	var db *DB
	var err error

	switch cfg.DB.Driver {
	case "", "pgx":
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	case "sqlite3":
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	default:
		return nil, fmt.Errorf("unsupported database driver: %q", cfg.DB.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	return &Storages{
		AccountRepository: NewAccountRepository(db, log),
		AuditRepository:   NewAuditRepository(db, log),
		DB:                db,
	}, nil
}
