package service

import (
	"context"

	"accountgate/models"
)

// AuthService handles credential verification and JWT token lifecycle.
type AuthService interface {
	Login(ctx context.Context, credentials models.Credentials) (models.Account, error)
	CreateToken(ctx context.Context, account models.Account) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// AccountService implements the guarded provisioning flow and the read-only
// account projections.
type AccountService interface {
	// ProvisionAccount runs the full guarded create:
	// capability check → uniqueness check → create-and-commit.
	// Every attempt, including rejected ones, leaves an audit event.
	ProvisionAccount(ctx context.Context, actorID int64, login string, request models.ProvisionRequest) (models.ProvisionedAccount, error)

	GetAccount(ctx context.Context, login string) (models.Account, error)
	GetAccountByID(ctx context.Context, accountID int64) (models.Account, error)
	ListAccounts(ctx context.Context, filter models.AccountFilter) ([]models.Account, error)
}

// HealthService reports backing-store liveness for the HTTP and gRPC health
// endpoints.
type HealthService interface {
	PingStore(ctx context.Context) error
}

// AppInfoService exposes build/application metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
