package store

import (
	"context"
	"fmt"
	"time"

	"accountgate/internal/logger"
	"accountgate/models"
)

// auditRepository is the SQL-backed implementation of [AuditRepository].
// The audit log is append-only; the only mutation besides INSERT is the
// retention sweep performed by the cleanup worker.
type auditRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAuditRepository constructs an [AuditRepository] backed by the provided
// database connection and logger.
func NewAuditRepository(db *DB, logger *logger.Logger) AuditRepository {
	logger.Debug().Msg("creating audit repository")
	return &auditRepository{
		db:     db,
		logger: logger,
	}
}

// AppendEvent persists a single audit event. The occurred_at timestamp is
// assigned by the database. The INSERT goes through [DB.ExecRetryContext]:
// audit writes are best-effort for callers, so one retry on a transient
// failure is the difference between a recorded and a lost event.
func (r *auditRepository) AppendEvent(ctx context.Context, event models.AuditEvent) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecRetryContext(ctx, appendAuditEvent,
		event.ActorID, event.Action, event.Subject, string(event.Outcome))
	if err != nil {
		log.Err(err).Str("func", "*auditRepository.AppendEvent").Msg("error appending audit event")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrAuditEventNotSaved
	}

	return nil
}

// DeleteEventsBefore removes all audit events older than cutoff and returns
// the number of deleted rows.
func (r *auditRepository) DeleteEventsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecRetryContext(ctx, deleteAuditEventsBefore, cutoff)
	if err != nil {
		log.Err(err).Str("func", "*auditRepository.DeleteEventsBefore").Msg("error deleting audit events")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return deleted, nil
}
