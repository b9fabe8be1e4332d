package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongSecret         = errors.New("wrong secret")

	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	// ErrProvisionNotPermitted is returned when the acting account lacks the
	// accounts:create capability. No store write happens on this path except
	// the audit event recording the rejection.
	ErrProvisionNotPermitted = errors.New("provisioning is not permitted for this account")

	// ErrInvalidLogin is returned when the candidate login is empty or does
	// not match the accepted login shape.
	ErrInvalidLogin = errors.New("invalid login provided")

	// ErrUnknownCapability is returned when a provisioning request asks to
	// grant a capability the service does not know.
	ErrUnknownCapability = errors.New("unknown capability requested")
)
