// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MarlyasDad

package store

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"sync"

	"github.com/MarlyasDad/cheat-chat/internal/logger"
	"github.com/MarlyasDad/cheat-chat/models"
)

// fileHistoryRepository appends lines to a plain text file. The file is
// opened lazily on the first Append and kept open until Close.
type fileHistoryRepository struct {
	path   string
	logger *logger.Logger

	mu     sync.Mutex
	file   *os.File
	closed bool
}

// NewFileHistoryRepository returns a [HistoryRepository] that appends to the
// text file at path, one line per message.
func NewFileHistoryRepository(path string, logger *logger.Logger) HistoryRepository {
	return &fileHistoryRepository{
		path:   path,
		logger: logger,
	}
}

// Append writes line, newline-terminated, with a single write call.
func (r *fileHistoryRepository) Append(ctx context.Context, line string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return ErrHistoryClosed
	}

	if r.file == nil {
		f, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			r.logger.Err(err).
				Str("func", "fileHistoryRepository.Append").
				Str("path", r.path).
				Msg("failed to open history file")
			return fmt.Errorf("%w: %w", ErrWritingHistory, err)
		}
		r.file = f
	}

	if !strings.HasSuffix(line, "\n") {
		line += "\n"
	}

	if _, err := r.file.WriteString(line); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingHistory, err)
	}

	return nil
}

func (r *fileHistoryRepository) Load(ctx context.Context) ([]string, error) {
	f, err := os.Open(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("%w: %w", ErrReadingHistory, err)
	}
	defer f.Close()

	lines := make([]string, 0, 64)
	reader := bufio.NewReader(f)
	for {
		if err = ctx.Err(); err != nil {
			return nil, err
		}

		line, readErr := reader.ReadString('\n')
		if line != "" {
			lines = append(lines, models.DisplayForm(line))
		}
		if readErr != nil {
			if errors.Is(readErr, io.EOF) {
				break
			}
			return nil, fmt.Errorf("%w: %w", ErrReadingHistory, readErr)
		}
	}

	return lines, nil
}

func (r *fileHistoryRepository) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.closed = true
	if r.file == nil {
		return nil
	}

	err := r.file.Close()
	r.file = nil
	return err
}
