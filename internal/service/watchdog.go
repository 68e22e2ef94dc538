// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MarlyasDad

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MarlyasDad/cheat-chat/internal/config"
	"github.com/MarlyasDad/cheat-chat/internal/logger"
	"github.com/MarlyasDad/cheat-chat/internal/transport"
)

// Watchdog keeps the write channel alive by sending an empty line at a fixed
// interval. A ping that does not complete within the timeout means the
// connection is gone.
type Watchdog struct {
	interval time.Duration
	timeout  time.Duration
}

// NewWatchdog reads the ping interval and timeout from cfg.
func NewWatchdog(cfg config.ClientSession) *Watchdog {
	return &Watchdog{
		interval: cfg.WatchdogInterval,
		timeout:  cfg.WatchdogTimeout,
	}
}

// Run pings conn until ctx is cancelled or a ping fails. A failed ping
// is reported as [ErrConnectionLost].
func (w *Watchdog) Run(ctx context.Context, conn transport.LineConn) error {
	log := logger.FromContext(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		pingCtx, cancel := context.WithTimeout(ctx, w.timeout)
		err := conn.WriteLine(pingCtx, "")
		cancel()

		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			log.Warn().Err(err).Str("func", "Watchdog.Run").Msg("keepalive ping failed")
			return fmt.Errorf("%w: keepalive ping: %w", ErrConnectionLost, err)
		}

		log.Debug().Str("func", "Watchdog.Run").Msg("keepalive ping sent")
	}
}
