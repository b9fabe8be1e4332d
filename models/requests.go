package models

// Credentials is the request body of the login endpoint.
type Credentials struct {
	// Login is the account login to authenticate as.
	Login string `json:"login"`

	// Secret is the plaintext account secret. It is compared against the
	// stored bcrypt hash and never persisted.
	Secret string `json:"secret"`
}

// ProvisionRequest is the optional request body of the provisioning endpoint.
// The candidate login itself travels in the URL path; the body carries only
// supplementary attributes of the new account.
type ProvisionRequest struct {
	// Name is the display name assigned to the new account.
	Name string `json:"name"`

	// Capabilities is the capability set granted to the new account.
	// When empty, the account receives the read-only default set.
	Capabilities CapabilitySet `json:"capabilities,omitempty"`
}
