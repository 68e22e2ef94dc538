// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MarlyasDad

package store

import (
	"context"
	"fmt"

	"github.com/MarlyasDad/cheat-chat/internal/config"
	"github.com/MarlyasDad/cheat-chat/internal/logger"
)

// ClientStorages groups the client's persisted state into a single value
// that can be passed around the service layer.
type ClientStorages struct {
	// Tokens holds the account token.
	Tokens TokenStore
	// History is the received-lines log, file or SQLite backed.
	History HistoryRepository
}

// NewClientStorages initialises the client storage layer. When
// cfg.HistoryDSN is set it opens the SQLite database there and runs pending
// migrations; otherwise history goes to the plain text file at
// cfg.HistoryPath.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	storages := &ClientStorages{
		Tokens: NewFileTokenStore(cfg.TokenPath),
	}

	if cfg.HistoryDSN == "" {
		storages.History = NewFileHistoryRepository(cfg.HistoryPath, logger)
		return storages, nil
	}

	db, err := NewConnectSQLite(ctx, cfg.HistoryDSN, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	storages.History = NewSQLiteHistoryRepository(db, logger)
	return storages, nil
}

// Close releases the history backend.
func (s *ClientStorages) Close() error {
	return s.History.Close()
}
