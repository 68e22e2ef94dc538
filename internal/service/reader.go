// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MarlyasDad

package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/MarlyasDad/cheat-chat/internal/config"
	"github.com/MarlyasDad/cheat-chat/internal/logger"
	"github.com/MarlyasDad/cheat-chat/internal/queue"
	"github.com/MarlyasDad/cheat-chat/internal/store"
	"github.com/MarlyasDad/cheat-chat/internal/transport"
)

// Reader listens on a single read channel: every received line is stamped,
// printed to out and appended to the history. It does not reconnect.
type Reader struct {
	host    string
	port    int
	dialer  transport.Dialer
	loop    *ReadLoop
	history *HistoryService
	display *queue.Queue[string]
	out     io.Writer
	logger  *logger.Logger
}

// NewReader builds a reader for the single channel port of cfg.
func NewReader(cfg config.ClientConnection, dialer transport.Dialer, repo store.HistoryRepository, out io.Writer, logger *logger.Logger) *Reader {
	queues := NewQueues()

	return &Reader{
		host:    cfg.Host,
		port:    cfg.ReaderPort(),
		dialer:  dialer,
		loop:    NewReadLoop(queues),
		history: NewHistoryService(repo, queues, logger),
		display: queues.Display,
		out:     out,
		logger:  logger,
	}
}

// Run prints lines until the connection breaks or ctx is cancelled.
// Cancellation returns nil; lines received before the end are always
// printed and stored.
func (r *Reader) Run(ctx context.Context) error {
	ctx = r.logger.WithContext(ctx)

	conn, err := r.dialer.Dial(ctx, r.host, r.port)
	if err != nil {
		return readerResult(err)
	}
	defer conn.Close()

	g, gctx := errgroup.WithContext(ctx)
	defer closeOnDone(gctx, conn)()

	g.Go(func() error { return r.loop.Run(gctx, conn) })
	g.Go(func() error { return r.print(gctx) })
	g.Go(func() error { return r.history.Run(gctx) })

	err = readerResult(g.Wait())
	r.logger.Info().Err(err).Str("func", "Reader.Run").Int("port", r.port).Msg("reader stopped")
	return err
}

func (r *Reader) print(ctx context.Context) error {
	for {
		line, err := r.display.Get(ctx)
		if err != nil {
			for _, rest := range r.display.Drain() {
				if err = r.writeLine(rest); err != nil {
					return err
				}
			}
			return nil
		}

		if err = r.writeLine(line); err != nil {
			return err
		}
	}
}

func (r *Reader) writeLine(line string) error {
	if _, err := fmt.Fprintln(r.out, line); err != nil {
		return fmt.Errorf("print line: %w", err)
	}
	return nil
}

func readerResult(err error) error {
	err = classifySessionError(err)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
