package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"accountgate/internal/logger"
	"accountgate/models"
)

// accountRepository is the SQL-backed implementation of [AccountRepository].
// It handles account creation and lookup against the "accounts" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type accountRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAccountRepository constructs an [AccountRepository] backed by the
// provided database connection and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	logger.Debug().Msg("creating account repository")
	return &accountRepository{
		db:     db,
		logger: logger,
	}
}

// CreateAccount persists a new account record and returns the fully populated
// [models.Account] with server-assigned fields (AccountID, CreatedAt).
//
// The INSERT uses the [createAccount] prepared query which returns all columns
// via a RETURNING clause, so the caller receives the canonical database
// representation of the newly created account.
//
// Error handling:
//   - unique-constraint violation on login → [ErrLoginAlreadyRegistered].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → returned directly.
func (r *accountRepository) CreateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createAccount,
		account.PublicID, account.Login, account.Name, account.SecretHash, account.Capabilities.String())

	// create account in db
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*accountRepository.CreateAccount").Msg("error: row is nil")

		if isUniqueViolation(err) {
			return models.Account{}, ErrLoginAlreadyRegistered
		}
		return models.Account{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	// scan saved account from db
	var rawCapabilities string
	if err := row.Scan(&account.AccountID, &account.PublicID, &account.Login, &account.Name,
		&account.SecretHash, &rawCapabilities, &account.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return models.Account{}, ErrLoginAlreadyRegistered
		}
		log.Err(err).Str("func", "*accountRepository.CreateAccount").Msg("error: scanning error")
		return models.Account{}, err
	}
	account.Capabilities = models.ParseCapabilitySet(rawCapabilities)

	return account, nil
}

// FindAccountByLogin retrieves the account record whose login matches the one
// provided.
//
// Error handling:
//   - Empty result set ([sql.ErrNoRows]) → [ErrNoAccountWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *accountRepository) FindAccountByLogin(ctx context.Context, login string) (models.Account, error) {
	return r.findAccount(ctx, findAccountByLogin, login)
}

// FindAccountByID retrieves the account record with the given internal
// identifier. Error handling mirrors [FindAccountByLogin].
func (r *accountRepository) FindAccountByID(ctx context.Context, accountID int64) (models.Account, error) {
	return r.findAccount(ctx, findAccountByID, accountID)
}

func (r *accountRepository) findAccount(ctx context.Context, query string, arg any) (models.Account, error) {
	log := logger.FromContext(ctx)

	var foundAccount models.Account
	var rawCapabilities string
	row := r.db.QueryRowContext(ctx, query, arg)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*accountRepository.findAccount").Msg("error: row is nil")
		return models.Account{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	// scan found account from db
	if err := row.Scan(&foundAccount.AccountID, &foundAccount.PublicID, &foundAccount.Login,
		&foundAccount.Name, &foundAccount.SecretHash, &rawCapabilities, &foundAccount.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Account{}, ErrNoAccountWasFound
		}
		log.Err(err).Str("func", "*accountRepository.findAccount").Msg("error: scanning error")
		return models.Account{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	foundAccount.Capabilities = models.ParseCapabilitySet(rawCapabilities)

	return foundAccount, nil
}

// ListAccounts returns all accounts matching the filter, ordered by login.
// The SELECT is built dynamically via [buildListAccountsQuery].
func (r *accountRepository) ListAccounts(ctx context.Context, filter models.AccountFilter) ([]models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListAccountsQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.ListAccounts").Msg("error building listing query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.ListAccounts").Msg("error executing listing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var accounts []models.Account
	for rows.Next() {
		var account models.Account
		var rawCapabilities string
		if err := rows.Scan(&account.AccountID, &account.PublicID, &account.Login, &account.Name,
			&account.SecretHash, &rawCapabilities, &account.CreatedAt); err != nil {
			log.Err(err).Str("func", "*accountRepository.ListAccounts").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		account.Capabilities = models.ParseCapabilitySet(rawCapabilities)
		accounts = append(accounts, account)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return accounts, nil
}
