// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same e-mail already exists in the database.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a query expected to match a user
	// record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrStoryNotFound is returned when a story identified by its ID and owner
	// does not exist. Stories of other users are reported the same way.
	ErrStoryNotFound = errors.New("travel story was not found")

	// ErrAssetNotFound is returned when a stored asset does not exist.
	ErrAssetNotFound = errors.New("asset was not found")

	// ErrInvalidAssetName is returned when an asset name is empty or would
	// escape the storage root (path separators, "." or "..").
	ErrInvalidAssetName = errors.New("invalid asset name")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrUnsupportedDriver is returned when the configured database driver
	// is neither PostgreSQL nor SQLite.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)
