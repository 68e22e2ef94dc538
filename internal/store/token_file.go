// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MarlyasDad

package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

type fileTokenStore struct {
	path string
}

// NewFileTokenStore returns a [TokenStore] backed by the plain text file at
// path. The file is created on the first Save.
func NewFileTokenStore(path string) TokenStore {
	return &fileTokenStore{path: path}
}

func (s *fileTokenStore) Load(ctx context.Context) (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("%w: %w", ErrReadingToken, err)
	}

	return strings.TrimSpace(string(data)), nil
}

// Save writes token to a temporary file in the same directory and renames
// it over the token file.
func (s *fileTokenStore) Save(ctx context.Context, token string) error {
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".token-*")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWritingToken, err)
	}
	tmpName := tmp.Name()

	if _, err = tmp.WriteString(token); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: %w", ErrWritingToken, err)
	}
	if err = tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %w", ErrWritingToken, err)
	}
	if err = os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %w", ErrWritingToken, err)
	}

	return nil
}
