// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"accountgate/internal/logger"
	"accountgate/internal/service"
	"accountgate/internal/utils"
	"accountgate/models"

	"github.com/go-chi/chi/v5"
)

// ─────────────────────────────────────────────
// Mock services
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	loginFn       func(ctx context.Context, credentials models.Credentials) (models.Account, error)
	createTokenFn func(ctx context.Context, account models.Account) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) Login(ctx context.Context, credentials models.Credentials) (models.Account, error) {
	return m.loginFn(ctx, credentials)
}

func (m *mockAuthService) CreateToken(ctx context.Context, account models.Account) (models.Token, error) {
	return m.createTokenFn(ctx, account)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

// mockAccountService implements service.AccountService for unit tests.
type mockAccountService struct {
	provisionFn func(ctx context.Context, actorID int64, login string, request models.ProvisionRequest) (models.ProvisionedAccount, error)
	getFn       func(ctx context.Context, login string) (models.Account, error)
	getByIDFn   func(ctx context.Context, accountID int64) (models.Account, error)
	listFn      func(ctx context.Context, filter models.AccountFilter) ([]models.Account, error)
}

func (m *mockAccountService) ProvisionAccount(ctx context.Context, actorID int64, login string, request models.ProvisionRequest) (models.ProvisionedAccount, error) {
	return m.provisionFn(ctx, actorID, login, request)
}

func (m *mockAccountService) GetAccount(ctx context.Context, login string) (models.Account, error) {
	return m.getFn(ctx, login)
}

func (m *mockAccountService) GetAccountByID(ctx context.Context, accountID int64) (models.Account, error) {
	return m.getByIDFn(ctx, accountID)
}

func (m *mockAccountService) ListAccounts(ctx context.Context, filter models.AccountFilter) ([]models.Account, error) {
	return m.listFn(ctx, filter)
}

// mockHealthService implements service.HealthService for unit tests.
type mockHealthService struct {
	pingFn func(ctx context.Context) error
}

func (m *mockHealthService) PingStore(ctx context.Context) error {
	return m.pingFn(ctx)
}

// mockAppInfoService implements service.AppInfoService for unit tests.
type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(ctx context.Context) string {
	return m.version
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler whose services default to panicking mocks;
// override the ones each test exercises.
func newTestHandler(t *testing.T, svcs *service.Services) *Handler {
	t.Helper()
	if svcs.AppInfoService == nil {
		svcs.AppInfoService = &mockAppInfoService{version: "test"}
	}
	return NewHandler(svcs, "", logger.Nop())
}

// withURLParam attaches a chi route parameter to the request context so that
// handlers can be exercised without a full router.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// withActor stores an authenticated account ID in the request context, the
// same way the auth middleware does.
func withActor(r *http.Request, accountID int64) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), utils.AccountIDCtxKey, accountID))
}

// doRecorded is a tiny helper running fn against a fresh recorder.
func doRecorded(fn http.HandlerFunc, r *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	fn(rec, r)
	return rec
}
