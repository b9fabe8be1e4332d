package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"accountgate/models"
)

const (
	createAccount = `INSERT INTO accounts (public_id, login, name, secret_hash, capabilities)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING account_id, public_id, login, name, secret_hash, capabilities, created_at;`

	findAccountByLogin = `SELECT account_id, public_id, login, name, secret_hash, capabilities, created_at
    FROM accounts
    WHERE login = $1;`

	findAccountByID = `SELECT account_id, public_id, login, name, secret_hash, capabilities, created_at
    FROM accounts
    WHERE account_id = $1;`

	appendAuditEvent = `INSERT INTO audit_events (actor_id, action, subject, outcome)
    VALUES ($1, $2, $3, $4);`

	deleteAuditEventsBefore = `DELETE FROM audit_events
    WHERE occurred_at < $1;`
)

// buildListAccountsQuery dynamically builds the account listing SELECT from
// the optional filter criteria.
func buildListAccountsQuery(filter models.AccountFilter) (string, []any, error) {
	builder := sq.
		Select("account_id", "public_id", "login", "name", "secret_hash", "capabilities", "created_at").
		From(models.Account{}.TableName()).
		OrderBy("login").
		PlaceholderFormat(sq.Dollar)

	if filter.LoginPrefix != "" {
		builder = builder.Where(sq.Like{"login": filter.LoginPrefix + "%"})
	}

	// capabilities is stored as a comma-separated list; wrap both sides in
	// commas so that "accounts:read" never matches "accounts:readonly".
	if filter.Capability != "" {
		builder = builder.Where(
			sq.Expr("(',' || capabilities || ',') LIKE ?", "%,"+string(filter.Capability)+",%"),
		)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
