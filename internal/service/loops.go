// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MarlyasDad

package service

import (
	"context"
	"time"

	"github.com/MarlyasDad/cheat-chat/internal/queue"
	"github.com/MarlyasDad/cheat-chat/internal/transport"
	"github.com/MarlyasDad/cheat-chat/models"
)

// ReadLoop timestamps every line received on the read channel and fans it
// out to the display and history queues.
type ReadLoop struct {
	display *queue.Queue[string]
	history *queue.Queue[string]
	now     func() time.Time
}

// NewReadLoop wires the loop to the display and history queues.
func NewReadLoop(queues Queues) *ReadLoop {
	return &ReadLoop{
		display: queues.Display,
		history: queues.History,
		now:     time.Now,
	}
}

// Run reads until conn fails or ctx is cancelled. The display queue gets
// the line without its newline, the history queue gets it newline-terminated.
func (l *ReadLoop) Run(ctx context.Context, conn transport.LineConn) error {
	for {
		line, err := conn.ReadLine(ctx)
		if err != nil {
			return err
		}

		stamped := models.StampLine(line, l.now())
		l.display.Put(models.DisplayForm(stamped))
		l.history.Put(stamped)
	}
}

// WriteLoop sends user lines taken from the sending queue.
type WriteLoop struct {
	sending *queue.Queue[string]
}

// NewWriteLoop wires the loop to the sending queue.
func NewWriteLoop(queues Queues) *WriteLoop {
	return &WriteLoop{sending: queues.Sending}
}

// Run sends lines until conn fails or ctx is cancelled. Embedded line breaks
// are removed and every message is terminated by one blank line.
func (l *WriteLoop) Run(ctx context.Context, conn transport.LineConn) error {
	for {
		text, err := l.sending.Get(ctx)
		if err != nil {
			return err
		}

		if err = conn.WriteLine(ctx, models.SanitizeOutbound(text)+"\n"); err != nil {
			return err
		}
	}
}
