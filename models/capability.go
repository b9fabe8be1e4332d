// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// Capability is a named permission checked against an account before a
// guarded action proceeds.
type Capability string

// The full, enumerable permission model. Capability checks are plain set
// membership; no runtime reflection or dynamic permission loading is involved.
const (
	// CapAccountsCreate permits provisioning of new accounts.
	CapAccountsCreate Capability = "accounts:create"

	// CapAccountsRead permits listing and reading account projections.
	CapAccountsRead Capability = "accounts:read"

	// CapAuditRead permits reading the audit event log.
	CapAuditRead Capability = "audit:read"
)

// knownCapabilities enumerates every capability the service understands.
var knownCapabilities = map[Capability]struct{}{
	CapAccountsCreate: {},
	CapAccountsRead:   {},
	CapAuditRead:      {},
}

// Valid reports whether c names a capability known to the service.
func (c Capability) Valid() bool {
	_, ok := knownCapabilities[c]
	return ok
}

// CapabilitySet is the set of capabilities granted to an account.
type CapabilitySet []Capability

// Can reports whether the set contains the given capability.
func (s CapabilitySet) Can(c Capability) bool {
	for _, granted := range s {
		if granted == c {
			return true
		}
	}
	return false
}

// String returns the comma-separated storage representation of the set.
// It implements the fmt.Stringer interface.
func (s CapabilitySet) String() string {
	parts := make([]string, 0, len(s))
	for _, c := range s {
		parts = append(parts, string(c))
	}
	return strings.Join(parts, ",")
}

// ParseCapabilitySet parses the comma-separated storage representation
// produced by [CapabilitySet.String]. Empty entries are skipped; unknown
// capability names are preserved so that records written by a newer server
// version survive a round trip.
func ParseCapabilitySet(raw string) CapabilitySet {
	if raw == "" {
		return nil
	}

	var set CapabilitySet
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		set = append(set, Capability(part))
	}
	return set
}
