// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"errors"
	"testing"
	"time"

	"accountgate/internal/config"
	"accountgate/internal/logger"
	"accountgate/internal/mock"

	"go.uber.org/mock/gomock"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run was called.
type mockWorker struct {
	runCount int
}

func (m *mockWorker) Run() {
	m.runCount++
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ws := &Workers{workers: []Worker{w1, w2, w3}}
	ws.Run()

	for i, w := range []*mockWorker{w1, w2, w3} {
		if w.runCount != 1 {
			t.Errorf("worker[%d]: expected runCount=1, got %d", i, w.runCount)
		}
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := &Workers{}

	// Should not panic when workers field is nil
	ws.Run()
}

func TestNewAuditCleanupWorker_InvalidSchedule(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := config.Workers{
		CleanupSchedule: "not a cron expression",
		AuditRetention:  720 * time.Hour,
	}

	_, err := newAuditCleanupWorker(mock.NewMockAuditRepository(ctrl), cfg, logger.Nop())
	if err == nil {
		t.Fatal("expected error for invalid cron expression, got nil")
	}
}

func TestAuditCleanupWorker_Sweep(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	auditRepo := mock.NewMockAuditRepository(ctrl)

	retention := 720 * time.Hour
	worker, err := newAuditCleanupWorker(auditRepo, config.Workers{
		CleanupSchedule: "0 3 * * *",
		AuditRetention:  retention,
	}, logger.Nop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	auditRepo.EXPECT().DeleteEventsBefore(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, cutoff time.Time) (int64, error) {
			want := time.Now().Add(-retention)
			if cutoff.Before(want.Add(-time.Minute)) || cutoff.After(want.Add(time.Minute)) {
				t.Errorf("cutoff %v is not ~retention in the past", cutoff)
			}
			return 3, nil
		},
	)

	worker.sweep()
}

// TestAuditCleanupWorker_SweepError verifies that a failing sweep is swallowed
// and will simply be retried on the next tick.
func TestAuditCleanupWorker_SweepError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	auditRepo := mock.NewMockAuditRepository(ctrl)

	worker, err := newAuditCleanupWorker(auditRepo, config.Workers{
		CleanupSchedule: "@hourly",
		AuditRetention:  time.Hour,
	}, logger.Nop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	auditRepo.EXPECT().DeleteEventsBefore(gomock.Any(), gomock.Any()).
		Return(int64(0), errors.New("store unavailable"))

	worker.sweep() // must not panic
}
