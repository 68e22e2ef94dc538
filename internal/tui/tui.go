// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MarlyasDad

package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/MarlyasDad/cheat-chat/internal/logger"
	"github.com/MarlyasDad/cheat-chat/internal/service"
	"github.com/MarlyasDad/cheat-chat/models"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrUserQuit is returned by [TUI.Run] when the user closed the window.
var ErrUserQuit = errors.New("вышел из программы")

// TUI is the terminal chat window. It consumes the display and status
// queues and produces the sending queue.
type TUI struct {
	queues  service.Queues
	info    models.BuildInfo
	logger  *logger.Logger
	options []tea.ProgramOption
}

// New creates a chat window over queues.
func New(queues service.Queues, info models.BuildInfo, logger *logger.Logger) *TUI {
	return &TUI{
		queues:  queues,
		info:    info,
		logger:  logger,
		options: []tea.ProgramOption{tea.WithAltScreen()},
	}
}

// Run shows the window until the user quits, ctx is cancelled, or an error
// arrives on fatal and the user dismisses it.
//
// It returns [ErrUserQuit] on a user quit, the fatal error after it has
// been shown, and nil when ctx was cancelled.
func (t *TUI) Run(ctx context.Context, fatal <-chan error) error {
	model := newChatModel(ctx, t.queues, fatal, t.info, t.logger)

	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, t.options...)
	finalModel, err := tea.NewProgram(model, opts...).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run terminal ui: %w", err)
	}

	result, ok := finalModel.(chatModel)
	if !ok {
		return tea.ErrProgramKilled
	}

	switch {
	case result.fatalErr != nil:
		return result.fatalErr
	case result.quitByUser:
		return ErrUserQuit
	}

	return nil
}
