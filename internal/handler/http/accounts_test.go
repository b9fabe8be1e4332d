// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"accountgate/internal/service"
	"accountgate/internal/store"
	"accountgate/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// provisionAccount
// ─────────────────────────────────────────────

func TestProvisionAccount_Success(t *testing.T) {
	accounts := &mockAccountService{
		provisionFn: func(_ context.Context, actorID int64, login string, request models.ProvisionRequest) (models.ProvisionedAccount, error) {
			assert.Equal(t, int64(1), actorID)
			assert.Equal(t, "jdoe", login)
			assert.Equal(t, "John Doe", request.Name)
			return models.ProvisionedAccount{
				Account: models.Account{PublicID: "pid-42", Login: login, Name: request.Name},
				Secret:  "one-time-secret",
			}, nil
		},
	}

	h := newTestHandler(t, &service.Services{AccountService: accounts})
	req := httptest.NewRequest(http.MethodPost, "/api/accounts/jdoe",
		strings.NewReader(`{"name":"John Doe"}`))
	req = withActor(withURLParam(req, "login", "jdoe"), 1)

	rec := doRecorded(h.provisionAccount, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var response models.ProvisionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "pid-42", response.AccountID)
	assert.Equal(t, "jdoe", response.Login)
	assert.Equal(t, "one-time-secret", response.Secret)
}

// TestProvisionAccount_EmptyBody verifies that the JSON body is optional:
// provisioning with only the path login must succeed.
func TestProvisionAccount_EmptyBody(t *testing.T) {
	accounts := &mockAccountService{
		provisionFn: func(_ context.Context, _ int64, login string, request models.ProvisionRequest) (models.ProvisionedAccount, error) {
			assert.Empty(t, request.Name)
			return models.ProvisionedAccount{
				Account: models.Account{PublicID: "pid-1", Login: login},
				Secret:  "one-time-secret",
			}, nil
		},
	}

	h := newTestHandler(t, &service.Services{AccountService: accounts})
	req := httptest.NewRequest(http.MethodPost, "/api/accounts/jdoe", nil)
	req = withActor(withURLParam(req, "login", "jdoe"), 1)

	rec := doRecorded(h.provisionAccount, req)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestProvisionAccount_NoActorInContext(t *testing.T) {
	h := newTestHandler(t, &service.Services{AccountService: &mockAccountService{}})
	req := httptest.NewRequest(http.MethodPost, "/api/accounts/jdoe", nil)
	req = withURLParam(req, "login", "jdoe")

	rec := doRecorded(h.provisionAccount, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// TestProvisionAccount_ErrorMapping checks the status code for every guarded
// failure of the provisioning flow.
func TestProvisionAccount_ErrorMapping(t *testing.T) {
	cases := map[string]struct {
		err    error
		status int
	}{
		"forbidden":          {service.ErrProvisionNotPermitted, http.StatusForbidden},
		"conflict":           {store.ErrLoginAlreadyRegistered, http.StatusConflict},
		"invalid login":      {service.ErrInvalidLogin, http.StatusUnprocessableEntity},
		"unknown capability": {service.ErrUnknownCapability, http.StatusUnprocessableEntity},
		"store failure":      {store.ErrExecutingQuery, http.StatusInternalServerError},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			accounts := &mockAccountService{
				provisionFn: func(_ context.Context, _ int64, _ string, _ models.ProvisionRequest) (models.ProvisionedAccount, error) {
					return models.ProvisionedAccount{}, tc.err
				},
			}

			h := newTestHandler(t, &service.Services{AccountService: accounts})
			req := httptest.NewRequest(http.MethodPost, "/api/accounts/jdoe", nil)
			req = withActor(withURLParam(req, "login", "jdoe"), 1)

			rec := doRecorded(h.provisionAccount, req)
			assert.Equal(t, tc.status, rec.Code)
		})
	}
}

// TestProvisionAccount_StoreFailureBodyIsOpaque verifies that an unexpected
// store failure answers 500 with the bare status text: connection strings and
// driver messages must never reach the client.
func TestProvisionAccount_StoreFailureBodyIsOpaque(t *testing.T) {
	storeErr := fmt.Errorf("uniqueness check failed: %w: dial tcp 10.0.0.5:5432: connect: connection refused",
		store.ErrExecutingQuery)
	accounts := &mockAccountService{
		provisionFn: func(_ context.Context, _ int64, _ string, _ models.ProvisionRequest) (models.ProvisionedAccount, error) {
			return models.ProvisionedAccount{}, storeErr
		},
	}

	h := newTestHandler(t, &service.Services{AccountService: accounts})
	req := httptest.NewRequest(http.MethodPost, "/api/accounts/jdoe", nil)
	req = withActor(withURLParam(req, "login", "jdoe"), 1)

	rec := doRecorded(h.provisionAccount, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, http.StatusText(http.StatusInternalServerError)+"\n", rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "dial tcp")
	assert.NotContains(t, rec.Body.String(), "10.0.0.5")
}

// TestProvisionAccount_ClientErrorBodyStaysDescriptive pins the other half of
// the contract: mapped client errors keep their human-readable reason.
func TestProvisionAccount_ClientErrorBodyStaysDescriptive(t *testing.T) {
	accounts := &mockAccountService{
		provisionFn: func(_ context.Context, _ int64, _ string, _ models.ProvisionRequest) (models.ProvisionedAccount, error) {
			return models.ProvisionedAccount{}, service.ErrProvisionNotPermitted
		},
	}

	h := newTestHandler(t, &service.Services{AccountService: accounts})
	req := httptest.NewRequest(http.MethodPost, "/api/accounts/jdoe", nil)
	req = withActor(withURLParam(req, "login", "jdoe"), 1)

	rec := doRecorded(h.provisionAccount, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), service.ErrProvisionNotPermitted.Error())
}

// ─────────────────────────────────────────────
// listAccounts / getAccount / me
// ─────────────────────────────────────────────

func TestListAccounts_Success(t *testing.T) {
	accounts := &mockAccountService{
		listFn: func(_ context.Context, filter models.AccountFilter) ([]models.Account, error) {
			assert.Equal(t, models.Capability("accounts:read"), filter.Capability)
			assert.Equal(t, "dev", filter.LoginPrefix)
			return []models.Account{
				{PublicID: "pid-1", Login: "dev-alice", SecretHash: "must-not-leak"},
				{PublicID: "pid-2", Login: "dev-bob"},
			}, nil
		},
	}

	h := newTestHandler(t, &service.Services{AccountService: accounts})
	req := httptest.NewRequest(http.MethodGet, "/api/accounts?capability=accounts:read&q=dev", nil)
	rec := doRecorded(h.listAccounts, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var response models.ListAccountsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, 2, response.Length)
	assert.Len(t, response.Accounts, 2)

	// credential material must never appear in a projection
	assert.NotContains(t, rec.Body.String(), "must-not-leak")
}

func TestGetAccount_NotFound(t *testing.T) {
	accounts := &mockAccountService{
		getFn: func(_ context.Context, _ string) (models.Account, error) {
			return models.Account{}, store.ErrNoAccountWasFound
		},
	}

	h := newTestHandler(t, &service.Services{AccountService: accounts})
	req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/accounts/ghost", nil), "login", "ghost")
	rec := doRecorded(h.getAccount, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMe_Success(t *testing.T) {
	accounts := &mockAccountService{
		getByIDFn: func(_ context.Context, accountID int64) (models.Account, error) {
			assert.Equal(t, int64(7), accountID)
			return models.Account{PublicID: "pid-7", Login: "jdoe"}, nil
		},
	}

	h := newTestHandler(t, &service.Services{AccountService: accounts})
	req := withActor(httptest.NewRequest(http.MethodGet, "/api/me", nil), 7)
	rec := doRecorded(h.me, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var view models.AccountView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, "jdoe", view.Login)
}

func TestMe_NoActorInContext(t *testing.T) {
	h := newTestHandler(t, &service.Services{AccountService: &mockAccountService{}})
	rec := doRecorded(h.me, httptest.NewRequest(http.MethodGet, "/api/me", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
