// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MarlyasDad

package transport

import (
	"context"

	"github.com/MarlyasDad/cheat-chat/internal/logger"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/transport_mock.go -package=mock

// LineConn is one newline-delimited text channel. [Conn] implements it.
type LineConn interface {
	// ReadLine blocks until a full line is available and returns it with its
	// trailing newline.
	ReadLine(ctx context.Context) (string, error)
	// WriteLine sends text followed by a newline.
	WriteLine(ctx context.Context, text string) error
	// Close releases the channel. It is safe to call more than once.
	Close() error
}

// Dialer opens channels to the chat service.
type Dialer interface {
	Dial(ctx context.Context, host string, port int) (LineConn, error)
}

type tcpDialer struct{}

// NewDialer returns a [Dialer] that opens plain TCP channels with [Dial].
func NewDialer() Dialer {
	return tcpDialer{}
}

func (tcpDialer) Dial(ctx context.Context, host string, port int) (LineConn, error) {
	conn, err := Dial(ctx, host, port)
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Debug().
		Str("func", "tcpDialer.Dial").
		Str("remote_addr", conn.RemoteAddr()).
		Msg("connected")
	return conn, nil
}
