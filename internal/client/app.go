// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MarlyasDad

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MarlyasDad/cheat-chat/internal/config"
	"github.com/MarlyasDad/cheat-chat/internal/logger"
	"github.com/MarlyasDad/cheat-chat/internal/service"
	"github.com/MarlyasDad/cheat-chat/internal/store"
	"github.com/MarlyasDad/cheat-chat/internal/transport"
	"github.com/MarlyasDad/cheat-chat/internal/tui"
	"github.com/MarlyasDad/cheat-chat/internal/workers"
	"github.com/MarlyasDad/cheat-chat/models"
)

// App is the running chat client: history replay, background workers and
// the terminal UI.
type App struct {
	history HistoryReplayer
	workers workers.Worker
	ui      UI
	closers []func() error
	logger  *logger.Logger
}

// NewApp assembles an App from already built parts.
func NewApp(history HistoryReplayer, background workers.Worker, ui UI, logger *logger.Logger) *App {
	return &App{
		history: history,
		workers: background,
		ui:      ui,
		logger:  logger,
	}
}

// Build opens storage and wires the session supervisor, the history
// appender and the terminal UI according to cfg.
func Build(ctx context.Context, cfg *config.ClientConfig, info models.BuildInfo, log *logger.Logger) (*App, error) {
	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create client storages: %w", err)
	}

	queues := service.NewQueues()
	history := service.NewHistoryService(storages.History, queues, log)

	auth := service.NewAuthenticator(storages.Tokens, queues.Status, cfg.Session, log)
	session := service.NewSession(cfg, transport.NewDialer(), auth, queues, logSessionState(log), log)
	supervisor := service.NewSupervisor(session, queues.Status, cfg.Session, log)

	background := workers.NewWorkers(supervisor, history)
	ui := tui.New(queues, info, log)

	app := NewApp(history, background, ui, log)
	app.closers = append(app.closers, storages.Close)

	return app, nil
}

// Run replays history, starts the background workers and shows the UI.
// It returns nil when the user quits or ctx is cancelled, and the fatal
// worker error otherwise. Workers have stopped by the time it returns.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if n, err := a.history.Replay(ctx); err != nil {
		a.logger.Warn().Err(err).Str("func", "App.Run").Msg("history replay failed, starting with empty window")
	} else {
		a.logger.Info().Str("func", "App.Run").Int("lines", n).Msg("history replayed")
	}

	fatal := make(chan error, 1)
	done := make(chan struct{})
	go func() {
		defer close(done)
		fatal <- a.workers.Run(ctx)
	}()

	uiErr := a.ui.Run(ctx, fatal)
	cancel()
	<-done

	switch {
	case errors.Is(uiErr, tui.ErrUserQuit):
		a.logger.Info().Str("func", "App.Run").Msg("user quit")
		return nil
	case uiErr != nil:
		a.logger.Err(uiErr).Str("func", "App.Run").Msg("client stopped")
		return uiErr
	}

	a.logger.Info().Str("func", "App.Run").Msg("client stopped")
	return nil
}

// Close releases storage opened by [Build].
func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		errs = append(errs, c())
	}
	return errors.Join(errs...)
}

func logSessionState(log *logger.Logger) service.StateObserver {
	return func(sessionID string, state models.SessionState) {
		log.Debug().
			Str("func", "App.sessionState").
			Str("session_id", sessionID).
			Stringer("state", state).
			Msg("session state changed")
	}
}
