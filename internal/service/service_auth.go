package service

import (
	"context"
	"fmt"
	"time"

	"accountgate/internal/config"
	"accountgate/internal/logger"
	"accountgate/internal/store"
	"accountgate/internal/utils"
	"accountgate/models"
)

// authService is the concrete implementation of AuthService.
// It handles credential verification and JWT token lifecycle using an
// AccountRepository for persistence and bcrypt for secret comparison.
type authService struct {
	// accountRepository is the data-access layer used to look up accounts.
	accountRepository store.AccountRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// AccountRepository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(accountRepository store.AccountRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		accountRepository: accountRepository,
		tokenSignKey:      cfg.TokenSignKey,
		tokenIssuer:       cfg.TokenIssuer,
		tokenDuration:     cfg.TokenDuration,
		logger:            logger,
	}
}

// Login authenticates an existing account.
//
// It validates that both Login and Secret are non-empty, looks up the account
// by login, and compares the supplied secret against the stored bcrypt hash.
//
// Returns the authenticated account record or:
//   - ErrInvalidDataProvided if Login or Secret is empty.
//   - A wrapped storage error if the repository lookup fails (e.g. account
//     not found — see store.ErrNoAccountWasFound).
//   - ErrWrongSecret if the secret does not match the stored hash.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.Account, error) {
	log := logger.FromContext(ctx)

	if credentials.Login == "" || credentials.Secret == "" {
		log.Error().Str("login", credentials.Login).Msg("invalid credentials provided")
		return models.Account{}, ErrInvalidDataProvided
	}

	foundAccount, err := a.accountRepository.FindAccountByLogin(ctx, credentials.Login)
	if err != nil {
		log.Err(err).Str("login", credentials.Login).Msg("account search by login failed")
		return models.Account{}, fmt.Errorf("account search by login failed: %w", err)
	}

	if !utils.CompareSecret(foundAccount.SecretHash, credentials.Secret) {
		log.Error().
			Int64("id", foundAccount.AccountID).
			Str("login", foundAccount.Login).
			Msg("wrong secret")
		return models.Account{}, ErrWrongSecret
	}

	return foundAccount, nil
}

// CreateToken issues a signed JWT for the given account.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, account models.Account) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, account.AccountID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim. Any validation failure (expired, wrong issuer, malformed)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
//
// Returns the decoded token model on success or ErrTokenIsExpiredOrInvalid on
// any validation failure.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
