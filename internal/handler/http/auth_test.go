// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
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
// login — success
// ─────────────────────────────────────────────

// TestLogin_Success verifies that valid credentials result in 200 OK and an
// Authorization header containing the issued Bearer token.
func TestLogin_Success(t *testing.T) {
	const signedToken = "signed.jwt.token"

	auth := &mockAuthService{
		loginFn: func(_ context.Context, credentials models.Credentials) (models.Account, error) {
			return models.Account{AccountID: 7, Login: credentials.Login}, nil
		},
		createTokenFn: func(_ context.Context, _ models.Account) (models.Token, error) {
			return models.Token{SignedString: signedToken}, nil
		},
	}

	h := newTestHandler(t, &service.Services{AuthService: auth})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"login":"jdoe","secret":"s3cret"}`))
	rec := doRecorded(h.login, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer "+signedToken, rec.Header().Get("Authorization"))
}

// ─────────────────────────────────────────────
// login — failures
// ─────────────────────────────────────────────

func TestLogin_InvalidJSON(t *testing.T) {
	h := newTestHandler(t, &service.Services{AuthService: &mockAuthService{}})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader("{invalid json}"))
	rec := doRecorded(h.login, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid JSON was passed")
}

// TestLogin_WrongSecret verifies that both a wrong secret and an unknown login
// produce the same opaque 401 response.
func TestLogin_WrongSecret(t *testing.T) {
	for name, loginErr := range map[string]error{
		"wrong secret":  service.ErrWrongSecret,
		"unknown login": store.ErrNoAccountWasFound,
	} {
		t.Run(name, func(t *testing.T) {
			auth := &mockAuthService{
				loginFn: func(_ context.Context, _ models.Credentials) (models.Account, error) {
					return models.Account{}, loginErr
				},
			}

			h := newTestHandler(t, &service.Services{AuthService: auth})
			req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
				strings.NewReader(`{"login":"jdoe","secret":"bad"}`))
			rec := doRecorded(h.login, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), "invalid login/secret")
		})
	}
}

func TestLogin_TokenCreationFails(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, credentials models.Credentials) (models.Account, error) {
			return models.Account{AccountID: 7, Login: credentials.Login}, nil
		},
		createTokenFn: func(_ context.Context, _ models.Account) (models.Token, error) {
			return models.Token{}, errors.New("sign key misconfigured")
		},
	}

	h := newTestHandler(t, &service.Services{AuthService: auth})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"login":"jdoe","secret":"s3cret"}`))
	rec := doRecorded(h.login, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
