// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"accountgate/internal/config"
	"accountgate/internal/logger"
	"accountgate/internal/store"
	"accountgate/internal/utils"
	"accountgate/models"
)

// provisionAction is the action label recorded in audit events for every
// provisioning attempt.
const provisionAction = "accounts:create"

// loginPattern is the accepted login shape: lowercase alphanumeric start,
// 3–64 characters total, dots, underscores, and dashes allowed inside.
var loginPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9._-]{2,63}$`)

// accountService is the concrete implementation of AccountService.
//
// Provisioning is deliberately not wrapped in a serializable transaction:
// the accounts.login unique index is the authoritative duplicate guard, and
// the repository translates its violation into ErrLoginAlreadyRegistered.
// The explicit pre-check exists only to reject obvious duplicates before a
// secret is generated.
type accountService struct {
	accountRepository store.AccountRepository
	auditRepository   store.AuditRepository

	// bcryptCost is the cost factor applied when hashing generated secrets.
	bcryptCost int

	uuid   *utils.UUIDGenerator
	logger *logger.Logger
}

// NewAccountService constructs an AccountService wired to the given
// repositories. The returned service is stateless between calls and safe for
// concurrent use.
func NewAccountService(accountRepository store.AccountRepository, auditRepository store.AuditRepository, cfg config.App, logger *logger.Logger) AccountService {
	return &accountService{
		accountRepository: accountRepository,
		auditRepository:   auditRepository,
		bcryptCost:        cfg.BcryptCost,
		uuid:              utils.NewUUIDGenerator(),
		logger:            logger,
	}
}

// ProvisionAccount creates a new account on behalf of the actor.
//
// The flow is: validate candidate login → load actor and check the
// accounts:create capability → uniqueness pre-check → generate and hash the
// initial secret → single INSERT guarded by the login unique index.
//
// Failure paths leave the accounts table untouched; each attempt (success,
// forbidden, conflict) is recorded in the audit log. Audit write failures are
// logged but never fail the provisioning call itself.
//
// Returns the created account together with the plaintext secret, or:
//   - ErrInvalidLogin if the candidate login is empty or malformed.
//   - ErrUnknownCapability if the request grants an unknown capability.
//   - ErrProvisionNotPermitted if the actor lacks accounts:create.
//   - store.ErrLoginAlreadyRegistered if the login is taken, whether detected
//     by the pre-check or by the unique index during the INSERT.
func (s *accountService) ProvisionAccount(ctx context.Context, actorID int64, login string, request models.ProvisionRequest) (models.ProvisionedAccount, error) {
	log := logger.FromContext(ctx)

	if !loginPattern.MatchString(login) {
		log.Error().Str("login", login).Msg("invalid candidate login provided")
		return models.ProvisionedAccount{}, ErrInvalidLogin
	}

	capabilities := request.Capabilities
	if len(capabilities) == 0 {
		capabilities = models.CapabilitySet{models.CapAccountsRead}
	}
	for _, capability := range capabilities {
		if !capability.Valid() {
			log.Error().Str("capability", string(capability)).Msg("unknown capability requested")
			return models.ProvisionedAccount{}, fmt.Errorf("%w: %s", ErrUnknownCapability, capability)
		}
	}

	// Step 1 — authorization.
	actor, err := s.accountRepository.FindAccountByID(ctx, actorID)
	if err != nil {
		log.Err(err).Int64("actor_id", actorID).Msg("actor lookup failed")
		if errors.Is(err, store.ErrNoAccountWasFound) {
			return models.ProvisionedAccount{}, ErrProvisionNotPermitted
		}
		return models.ProvisionedAccount{}, fmt.Errorf("actor lookup failed: %w", err)
	}

	if !actor.Capabilities.Can(models.CapAccountsCreate) {
		log.Error().
			Int64("actor_id", actor.AccountID).
			Str("login", login).
			Msg("actor lacks accounts:create capability")
		s.appendAudit(ctx, actor.AccountID, login, models.AuditOutcomeForbidden)
		return models.ProvisionedAccount{}, ErrProvisionNotPermitted
	}

	// Step 2 — uniqueness pre-check.
	if _, err := s.accountRepository.FindAccountByLogin(ctx, login); err == nil {
		log.Error().Str("login", login).Msg("login already registered")
		s.appendAudit(ctx, actor.AccountID, login, models.AuditOutcomeConflict)
		return models.ProvisionedAccount{}, store.ErrLoginAlreadyRegistered
	} else if !errors.Is(err, store.ErrNoAccountWasFound) {
		log.Err(err).Str("login", login).Msg("uniqueness check failed")
		return models.ProvisionedAccount{}, fmt.Errorf("uniqueness check failed: %w", err)
	}

	// Step 3 — creation.
	secret, err := utils.GenerateSecret()
	if err != nil {
		log.Err(err).Msg("secret generation failed")
		return models.ProvisionedAccount{}, fmt.Errorf("secret generation failed: %w", err)
	}

	secretHash, err := utils.HashSecret(secret, s.bcryptCost)
	if err != nil {
		log.Err(err).Msg("secret hashing failed")
		return models.ProvisionedAccount{}, fmt.Errorf("secret hashing failed: %w", err)
	}

	created, err := s.accountRepository.CreateAccount(ctx, models.Account{
		PublicID:     s.uuid.Generate(),
		Login:        login,
		Name:         request.Name,
		SecretHash:   secretHash,
		Capabilities: capabilities,
	})
	if err != nil {
		if errors.Is(err, store.ErrLoginAlreadyRegistered) {
			// Lost the race window between pre-check and INSERT; the unique
			// index collapsed it into the same conflict outcome.
			s.appendAudit(ctx, actor.AccountID, login, models.AuditOutcomeConflict)
			return models.ProvisionedAccount{}, store.ErrLoginAlreadyRegistered
		}
		log.Err(err).Str("login", login).Msg("account creation ended with error")
		return models.ProvisionedAccount{}, fmt.Errorf("account creation ended with error: %w", err)
	}

	s.appendAudit(ctx, actor.AccountID, login, models.AuditOutcomeSuccess)

	return models.ProvisionedAccount{Account: created, Secret: secret}, nil
}

// GetAccount returns the account with the given login.
func (s *accountService) GetAccount(ctx context.Context, login string) (models.Account, error) {
	if login == "" {
		return models.Account{}, ErrInvalidLogin
	}

	return s.accountRepository.FindAccountByLogin(ctx, login)
}

// GetAccountByID returns the account with the given internal identifier.
// Used by the identity lookup endpoint for the authenticated principal.
func (s *accountService) GetAccountByID(ctx context.Context, accountID int64) (models.Account, error) {
	return s.accountRepository.FindAccountByID(ctx, accountID)
}

// ListAccounts returns all accounts matching the filter.
func (s *accountService) ListAccounts(ctx context.Context, filter models.AccountFilter) ([]models.Account, error) {
	return s.accountRepository.ListAccounts(ctx, filter)
}

// appendAudit records a provisioning attempt. Best effort: a failed audit
// write is logged and swallowed so it cannot mask the primary outcome.
func (s *accountService) appendAudit(ctx context.Context, actorID int64, subject string, outcome models.AuditOutcome) {
	err := s.auditRepository.AppendEvent(ctx, models.AuditEvent{
		ActorID: actorID,
		Action:  provisionAction,
		Subject: subject,
		Outcome: outcome,
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Int64("actor_id", actorID).
			Str("subject", subject).
			Msg("audit event append failed")
	}
}
