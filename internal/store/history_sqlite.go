// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MarlyasDad

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MarlyasDad/cheat-chat/internal/logger"
	"github.com/MarlyasDad/cheat-chat/models"
)

// sqliteHistoryRepository stores history lines as rows of the "history"
// table. Row ids preserve insertion order.
type sqliteHistoryRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewSQLiteHistoryRepository constructs a [HistoryRepository] backed by an
// already migrated database.
func NewSQLiteHistoryRepository(db *DB, logger *logger.Logger) HistoryRepository {
	return &sqliteHistoryRepository{
		DB:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (r *sqliteHistoryRepository) Append(ctx context.Context, line string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildAppendHistoryQuery(models.DisplayForm(line), r.now().UTC())
	if err != nil {
		log.Err(err).
			Str("func", "sqliteHistoryRepository.Append").
			Msg("failed to create query")
		return err
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "sqliteHistoryRepository.Append").
			Msg("failed to insert history line")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *sqliteHistoryRepository) Load(ctx context.Context) ([]string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildLoadHistoryQuery()
	if err != nil {
		log.Err(err).
			Str("func", "sqliteHistoryRepository.Load").
			Msg("failed to create query")
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "sqliteHistoryRepository.Load").
			Msg("failed to execute query for loading history")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	lines := make([]string, 0, 64)
	for rows.Next() {
		var line string
		if scanErr := rows.Scan(&line); scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		lines = append(lines, line)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "sqliteHistoryRepository.Load").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return lines, nil
}

func (r *sqliteHistoryRepository) Close() error {
	return r.DB.Close()
}
