// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MarlyasDad

package store

import (
	"database/sql"

	"github.com/MarlyasDad/cheat-chat/internal/logger"
	"github.com/MarlyasDad/cheat-chat/migrations"
)

// DB wraps the SQLite connection used by the history backend.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate brings the history schema up to date.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
