// Package adapter provides the client-side gateway to the accountgate HTTP
// API. It is consumed by the accountctl command-line tool.
package adapter

import (
	"context"

	"accountgate/models"
)

// ServerAdapter is the client-side contract for talking to the accountgate
// server. Implementations hold the bearer token obtained from Login and
// attach it to all subsequent authenticated calls.
type ServerAdapter interface {
	// SetToken stores a bearer token for subsequent authenticated requests.
	SetToken(token string)

	// Token returns the currently held bearer token, or an empty string.
	Token() string

	// Login exchanges credentials for a bearer token. The token is stored on
	// the adapter and also returned for callers that want to persist it.
	Login(ctx context.Context, credentials models.Credentials) (string, error)

	// ProvisionAccount asks the server to create a new account with the given
	// login. Requires a valid bearer token.
	ProvisionAccount(ctx context.Context, login string, request models.ProvisionRequest) (models.ProvisionResponse, error)

	// GetAccount fetches the public projection of a single account.
	// Requires a valid bearer token.
	GetAccount(ctx context.Context, login string) (models.AccountView, error)

	// ListAccounts fetches the public projections of accounts matching the
	// filter. Requires a valid bearer token.
	ListAccounts(ctx context.Context, filter models.AccountFilter) (models.ListAccountsResponse, error)

	// Ping probes the server's store health endpoint.
	Ping(ctx context.Context) error
}
