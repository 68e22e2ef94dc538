// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MarlyasDad

package store

import "errors"

// Sentinel errors returned by the token and history stores. Callers should
// use [errors.Is] to match against these values.
var (
	// ErrReadingToken is returned when the token file exists but cannot be
	// read.
	ErrReadingToken = errors.New("error reading token file")

	// ErrWritingToken is returned when the new token cannot be written and
	// moved into place. The previous token file is left untouched.
	ErrWritingToken = errors.New("error writing token file")

	// ErrReadingHistory is returned when the history file exists but cannot
	// be read.
	ErrReadingHistory = errors.New("error reading history file")

	// ErrWritingHistory is returned when a history line cannot be appended.
	ErrWritingHistory = errors.New("error writing history file")

	// ErrHistoryClosed is returned by Append after the repository was closed.
	ErrHistoryClosed = errors.New("history repository is closed")
)

// Low-level database operation errors of the SQLite history backend.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRows is returned when scanning history rows fails,
	// typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan history rows")
)
