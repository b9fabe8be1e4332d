package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"

	"accountgate/internal/logger"
	"accountgate/models"
)

func newTestAuditRepo(t *testing.T) (*auditRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &auditRepository{
		db:     &DB{DB: db, logger: l, errorClassificator: NewPostgresErrorClassifier()},
		logger: l,
	}
	return repo, mock, db
}

func TestAppendEvent_Success(t *testing.T) {
	repo, mock, db := newTestAuditRepo(t)
	defer db.Close()

	ctx := context.Background()
	event := models.AuditEvent{
		ActorID: 1,
		Action:  "accounts:create",
		Subject: "jdoe",
		Outcome: models.AuditOutcomeSuccess,
	}

	mock.ExpectExec("INSERT INTO audit_events").
		WithArgs(event.ActorID, event.Action, event.Subject, string(event.Outcome)).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.AppendEvent(ctx, event); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAppendEvent_NoRowsAffected(t *testing.T) {
	repo, mock, db := newTestAuditRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("INSERT INTO audit_events").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.AppendEvent(ctx, models.AuditEvent{ActorID: 1})
	if !errors.Is(err, ErrAuditEventNotSaved) {
		t.Fatalf("expected ErrAuditEventNotSaved, got %v", err)
	}
}

func TestAppendEvent_ExecError(t *testing.T) {
	repo, mock, db := newTestAuditRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("INSERT INTO audit_events").
		WillReturnError(errors.New("db gone away"))

	err := repo.AppendEvent(ctx, models.AuditEvent{ActorID: 1})
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
}

// TestAppendEvent_RetriedAfterTransientError verifies that a statement failing
// with a retryable driver error (here a deadlock rollback) is re-issued once.
func TestAppendEvent_RetriedAfterTransientError(t *testing.T) {
	repo, mock, db := newTestAuditRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("INSERT INTO audit_events").
		WillReturnError(pgError(pgerrcode.DeadlockDetected))
	mock.ExpectExec("INSERT INTO audit_events").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.AppendEvent(ctx, models.AuditEvent{ActorID: 1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

// TestAppendEvent_NotRetriedAfterPermanentError pins the other side: a
// non-retryable driver error (constraint violation) is surfaced immediately.
func TestAppendEvent_NotRetriedAfterPermanentError(t *testing.T) {
	repo, mock, db := newTestAuditRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("INSERT INTO audit_events").
		WillReturnError(pgError(pgerrcode.NotNullViolation))

	err := repo.AppendEvent(ctx, models.AuditEvent{ActorID: 1})
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestDeleteEventsBefore_Success(t *testing.T) {
	repo, mock, db := newTestAuditRepo(t)
	defer db.Close()

	ctx := context.Background()
	cutoff := time.Now().Add(-30 * 24 * time.Hour)

	mock.ExpectExec("DELETE FROM audit_events").
		WithArgs(cutoff).
		WillReturnResult(sqlmock.NewResult(0, 42))

	deleted, err := repo.DeleteEventsBefore(ctx, cutoff)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted != 42 {
		t.Errorf("expected 42 deleted rows, got %d", deleted)
	}
}

func TestDeleteEventsBefore_ExecError(t *testing.T) {
	repo, mock, db := newTestAuditRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM audit_events").
		WillReturnError(errors.New("db gone away"))

	_, err := repo.DeleteEventsBefore(ctx, time.Now())
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
}
