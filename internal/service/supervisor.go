// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MarlyasDad

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/MarlyasDad/cheat-chat/internal/config"
	"github.com/MarlyasDad/cheat-chat/internal/logger"
	"github.com/MarlyasDad/cheat-chat/internal/queue"
	"github.com/MarlyasDad/cheat-chat/models"
)

// ErrAttemptsExhausted wraps the last session error once the configured
// number of reconnects has been used up.
var ErrAttemptsExhausted = errors.New("reconnect attempts exhausted")

// Supervisor restarts a session after connection failures with a fixed
// delay. An invalid token ends supervision immediately.
type Supervisor struct {
	session    SessionRunner
	status     *queue.Queue[models.StatusEvent]
	newBackoff func() retry.Backoff
	wait       func(ctx context.Context, d time.Duration) error
	logger     *logger.Logger
}

// NewSupervisor supervises session using the reconnect delay and attempt
// limit of cfg. MaxAttempts of zero retries forever.
func NewSupervisor(session SessionRunner, status *queue.Queue[models.StatusEvent], cfg config.ClientSession, logger *logger.Logger) *Supervisor {
	delay := cfg.ReconnectDelay
	maxAttempts := cfg.MaxAttempts

	return &Supervisor{
		session: session,
		status:  status,
		newBackoff: func() retry.Backoff {
			b := retry.NewConstant(delay)
			if maxAttempts > 0 {
				b = retry.WithMaxRetries(uint64(maxAttempts), b)
			}
			return b
		},
		wait:   sleepContext,
		logger: logger,
	}
}

// Run keeps a session running until ctx is cancelled, the token is
// rejected or the attempt limit is reached. Cancellation returns nil.
func (s *Supervisor) Run(ctx context.Context) error {
	backoff := s.newBackoff()

	for attempt := 1; ; attempt++ {
		err := s.session.Run(ctx)
		if ctx.Err() != nil {
			s.logger.Info().Str("func", "Supervisor.Run").Msg("supervisor stopped")
			return nil
		}

		if errors.Is(err, ErrInvalidToken) {
			s.logger.Error().Err(err).Str("func", "Supervisor.Run").Msg("token rejected, not reconnecting")
			return err
		}
		if err == nil {
			err = fmt.Errorf("%w: session ended", ErrConnectionLost)
		}

		s.status.Put(models.NewReadStateChanged(models.ConnectionClosed))
		s.status.Put(models.NewSendStateChanged(models.ConnectionClosed))

		delay, stop := backoff.Next()
		if stop {
			s.logger.Error().Err(err).Int("attempt", attempt).Str("func", "Supervisor.Run").Msg("giving up")
			return fmt.Errorf("%w: %w", ErrAttemptsExhausted, err)
		}

		s.logger.Warn().Err(err).
			Int("attempt", attempt).
			Dur("delay", delay).
			Str("func", "Supervisor.Run").
			Msg("session failed, reconnecting")

		if waitErr := s.wait(ctx, delay); waitErr != nil {
			s.logger.Info().Str("func", "Supervisor.Run").Msg("supervisor stopped")
			return nil
		}
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
