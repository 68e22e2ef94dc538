// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MarlyasDad

package tui

import (
	"context"
	"time"

	"github.com/MarlyasDad/cheat-chat/internal/queue"
	"github.com/MarlyasDad/cheat-chat/models"
	tea "github.com/charmbracelet/bubbletea"
)

const statusClearDelay = 2 * time.Second

// cmdWaitDisplay blocks on the display queue. The model issues exactly one
// of these at a time, so the queue keeps a single consumer.
func cmdWaitDisplay(ctx context.Context, q *queue.Queue[string]) tea.Cmd {
	return func() tea.Msg {
		line, err := q.Get(ctx)
		if err != nil {
			return queueClosedMsg{}
		}
		return displayLineMsg(line)
	}
}

func cmdWaitStatus(ctx context.Context, q *queue.Queue[models.StatusEvent]) tea.Cmd {
	return func() tea.Msg {
		event, err := q.Get(ctx)
		if err != nil {
			return queueClosedMsg{}
		}
		return statusEventMsg(event)
	}
}

// cmdWaitFatal reports the error that ended the background workers. A nil
// result or a closed channel produces no message.
func cmdWaitFatal(ctx context.Context, fatal <-chan error) tea.Cmd {
	if fatal == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case <-ctx.Done():
			return nil
		case err, ok := <-fatal:
			if !ok || err == nil {
				return nil
			}
			return fatalErrorMsg{err: err}
		}
	}
}

func cmdCopy(write func(string) error, text string) tea.Cmd {
	return func() tea.Msg {
		if err := write(text); err != nil {
			return copyFailedMsg{err: err}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusClearDelay, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
