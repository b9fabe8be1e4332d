package models

// ProvisionResponse is the success body of the provisioning endpoint.
// Secret is returned exactly once; the server stores only its bcrypt hash.
type ProvisionResponse struct {
	// AccountID is the public identifier of the created account.
	AccountID string `json:"account_id"`

	// Login is the login the account was created with.
	Login string `json:"login"`

	// Secret is the generated initial credential for the account.
	Secret string `json:"secret"`
}

// ListAccountsResponse contains the public projections of every account
// matching the listing filter.
type ListAccountsResponse struct {
	// Accounts is the list of account projections.
	Accounts []AccountView `json:"accounts"`

	// Length is the total number of entries in Accounts.
	// Provided for convenience so the caller can validate the response
	// without iterating the slice.
	Length int `json:"length"`
}

// TimeResponse is the body of the timezone lookup endpoint.
type TimeResponse struct {
	// Zone is the resolved IANA zone name (e.g. "Europe/Berlin").
	Zone string `json:"zone"`

	// Time is the current time in the requested zone, RFC 3339 formatted.
	Time string `json:"time"`
}
