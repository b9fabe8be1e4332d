// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrLoginAlreadyRegistered is returned when an attempt to provision a
	// new account fails because an account with the same login already
	// exists in the database.
	ErrLoginAlreadyRegistered = errors.New("login already registered")

	// ErrNoAccountWasFound is returned when a query expected to match at
	// least one account record produces an empty result set.
	ErrNoAccountWasFound = errors.New("no account was found")

	// ErrAuditEventNotSaved is returned when an INSERT of an audit event
	// completes without error but the number of affected rows is zero,
	// indicating that no event was actually persisted.
	ErrAuditEventNotSaved = errors.New("audit event was not saved")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan account row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan account rows")
)
