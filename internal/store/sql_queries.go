// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MarlyasDad

package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	historyTable         = "history"
	historyColumnID      = "id"
	historyColumnLine    = "line"
	historyColumnCreated = "created_at"
)

// SQLite uses "?" placeholders.
var sqlBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildAppendHistoryQuery(line string, createdAt time.Time) (string, []any, error) {
	query, args, err := sqlBuilder.
		Insert(historyTable).
		Columns(historyColumnLine, historyColumnCreated).
		Values(line, createdAt).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildLoadHistoryQuery() (string, []any, error) {
	query, args, err := sqlBuilder.
		Select(historyColumnLine).
		From(historyTable).
		OrderBy(historyColumnID + " ASC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
