// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by the upload journal. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrUploadAlreadyRecorded is returned when a result with the same run id
	// and item index is already stored in the journal.
	ErrUploadAlreadyRecorded = errors.New("upload already recorded")

	// ErrJournalUnavailable is returned when the journal database rejected an
	// operation for a transient reason (lost connection, lock contention).
	ErrJournalUnavailable = errors.New("upload journal is temporarily unavailable")

	// ErrUnsupportedDSN is returned when a DSN names neither a PostgreSQL
	// server nor a SQLite file.
	ErrUnsupportedDSN = errors.New("unsupported journal dsn")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SQL statement fails.
	ErrExecutingQuery = errors.New("error executing query")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan upload rows")
)
