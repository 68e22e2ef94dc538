// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MarlyasDad

package store

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// TokenStore persists the single opaque account token.
type TokenStore interface {
	// Load returns the stored token with surrounding whitespace removed.
	// A missing or blank token file yields "" and no error.
	Load(ctx context.Context) (string, error)
	// Save replaces the stored token. A failed save leaves the previous
	// token in place.
	Save(ctx context.Context, token string) error
}

// HistoryRepository is the durable, append-only log of received lines.
type HistoryRepository interface {
	// Append stores one timestamped line.
	Append(ctx context.Context, line string) error
	// Load returns every stored line in insertion order without trailing
	// newlines. A history that was never written is empty.
	Load(ctx context.Context) ([]string, error)
	// Close releases the underlying file or database handle.
	Close() error
}
