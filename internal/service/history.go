// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MarlyasDad

package service

import (
	"context"

	"github.com/MarlyasDad/cheat-chat/internal/logger"
	"github.com/MarlyasDad/cheat-chat/internal/queue"
	"github.com/MarlyasDad/cheat-chat/internal/store"
)

// HistoryService replays stored history at startup and appends newly
// received lines in the background.
type HistoryService struct {
	repo    store.HistoryRepository
	display *queue.Queue[string]
	history *queue.Queue[string]
	logger  *logger.Logger
}

// NewHistoryService wires repo to the display and history queues.
func NewHistoryService(repo store.HistoryRepository, queues Queues, logger *logger.Logger) *HistoryService {
	return &HistoryService{
		repo:    repo,
		display: queues.Display,
		history: queues.History,
		logger:  logger,
	}
}

// Replay puts every stored line on the display queue in order and returns
// how many lines were replayed.
func (h *HistoryService) Replay(ctx context.Context) (int, error) {
	lines, err := h.repo.Load(ctx)
	if err != nil {
		h.logger.Err(err).Str("func", "HistoryService.Replay").Msg("failed to load history")
		return 0, err
	}

	for _, line := range lines {
		h.display.Put(line)
	}

	h.logger.Debug().Str("func", "HistoryService.Replay").Int("lines", len(lines)).Msg("history replayed")
	return len(lines), nil
}

// Run appends lines from the history queue until ctx is cancelled, then
// flushes what is still queued. A failed append is logged and skipped.
func (h *HistoryService) Run(ctx context.Context) error {
	for {
		line, err := h.history.Get(ctx)
		if err != nil {
			h.flush(context.WithoutCancel(ctx))
			return nil
		}
		h.append(ctx, line)
	}
}

func (h *HistoryService) flush(ctx context.Context) {
	for _, line := range h.history.Drain() {
		h.append(ctx, line)
	}
}

func (h *HistoryService) append(ctx context.Context, line string) {
	if err := h.repo.Append(ctx, line); err != nil {
		h.logger.Err(err).Str("func", "HistoryService.append").Msg("failed to append history line")
	}
}
