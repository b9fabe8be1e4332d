package models

import "time"

// Account represents a staff account entity used for authentication and
// authorization. It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type Account struct {
	// AccountID is the internal unique identifier of the account.
	// It is not exposed via JSON and is used only at the persistence layer.
	AccountID int64 `json:"-"`

	// PublicID is the externally visible identifier of the account.
	// It is returned to API callers instead of the internal AccountID.
	PublicID string `json:"account_id"`

	// Login is the unique login identifier of the account.
	// It is the uniqueness key: at most one account per login may exist.
	Login string `json:"login"`

	// Name is the display name of the account holder.
	// It is non-sensitive and may be shown in listings.
	Name string `json:"name"`

	// SecretHash stores the bcrypt hash of the account's secret.
	// It MUST never contain the plaintext secret and is never serialized.
	SecretHash string `json:"-"`

	// Capabilities is the set of named permissions granted to the account.
	Capabilities CapabilitySet `json:"capabilities"`

	// CreatedAt is the timestamp when the account was created.
	// Used for auditing and lifecycle management.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Account model.
func (a Account) TableName() string {
	return "accounts"
}

// View returns the public projection of the account: everything an API
// caller may see, with credential material stripped.
func (a Account) View() AccountView {
	return AccountView{
		PublicID:     a.PublicID,
		Login:        a.Login,
		Name:         a.Name,
		Capabilities: a.Capabilities,
		CreatedAt:    a.CreatedAt,
	}
}

// AccountView is the public projection of an [Account].
type AccountView struct {
	PublicID     string        `json:"account_id"`
	Login        string        `json:"login"`
	Name         string        `json:"name"`
	Capabilities CapabilitySet `json:"capabilities"`
	CreatedAt    time.Time     `json:"created_at"`
}

// ProvisionedAccount is the result of a successful provisioning call.
// Secret is the generated initial credential; it is returned to the caller
// exactly once and is not recoverable afterwards.
type ProvisionedAccount struct {
	Account Account
	Secret  string
}

// AccountFilter holds the optional criteria accepted by account listing.
// Zero-value fields are ignored; only unencrypted columns can be filtered on.
type AccountFilter struct {
	// Capability restricts the result to accounts granted the capability.
	Capability Capability

	// LoginPrefix restricts the result to logins starting with the prefix.
	LoginPrefix string
}
