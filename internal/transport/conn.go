// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MarlyasDad

package transport

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"
	"sync"
	"time"
)

// MaxLineLength bounds a single received line, newline included.
const MaxLineLength = 64 * 1024

// Conn is a newline-delimited text connection.
//
// ReadLine must be called from a single goroutine. WriteLine may be called
// concurrently; writes are serialised so that lines never interleave.
type Conn struct {
	conn   net.Conn
	reader  *bufio.Reader
	writer  *bufio.Writer
	maxLine int

	// wslot is a one-slot semaphore guarding writer. A channel is used
	// instead of a mutex so that waiting for the slot honours ctx.
	wslot chan struct{}

	closeOnce sync.Once
	closeErr  error
}

// NewConn wraps an established stream.
func NewConn(conn net.Conn) *Conn {
	return &Conn{
		conn:    conn,
		reader:  bufio.NewReader(conn),
		writer:  bufio.NewWriter(conn),
		maxLine: MaxLineLength,
		wslot:   make(chan struct{}, 1),
	}
}

// Dial opens a TCP connection to host:port.
// Any resolution or connection failure is reported as [ErrConnect]; if ctx
// is cancelled while dialing, ctx.Err() is returned instead.
func Dial(ctx context.Context, host string, port int) (*Conn, error) {
	addr := net.JoinHostPort(host, strconv.Itoa(port))

	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: dial %s: %w", ErrConnect, addr, err)
	}

	return NewConn(conn), nil
}

// ReadLine blocks until a complete line is available and returns it with its
// trailing '\n'. EOF, a partial final line, a line longer than
// [MaxLineLength] or any socket error is reported as [ErrConnectionLost].
func (c *Conn) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var line []byte
	for {
		chunk, err := c.reader.ReadSlice('\n')
		if len(line)+len(chunk) > c.maxLine {
			return "", c.wrapErr(ctx, "read", bufio.ErrTooLong)
		}
		line = append(line, chunk...)

		switch {
		case err == nil:
			return string(line), nil
		case errors.Is(err, bufio.ErrBufferFull):
			continue
		default:
			return "", c.wrapErr(ctx, "read", err)
		}
	}
}

// WriteLine writes text followed by '\n' and flushes it to the socket.
// A deadline on ctx becomes the socket write deadline, so a stalled peer
// surfaces as [ErrConnectionLost] once it expires.
func (c *Conn) WriteLine(ctx context.Context, text string) error {
	select {
	case c.wslot <- struct{}{}:
	case <-ctx.Done():
		return c.wrapErr(ctx, "write", ctx.Err())
	}
	defer func() { <-c.wslot }()

	if deadline, ok := ctx.Deadline(); ok {
		if err := c.conn.SetWriteDeadline(deadline); err != nil {
			return c.wrapErr(ctx, "set write deadline", err)
		}
		defer func() { _ = c.conn.SetWriteDeadline(time.Time{}) }()
	}

	if _, err := c.writer.WriteString(text + "\n"); err != nil {
		return c.wrapErr(ctx, "write", err)
	}
	if err := c.writer.Flush(); err != nil {
		return c.wrapErr(ctx, "flush", err)
	}

	return nil
}

// Close closes the underlying stream. It is safe to call more than once.
func (c *Conn) Close() error {
	c.closeOnce.Do(func() {
		c.closeErr = c.conn.Close()
	})
	return c.closeErr
}

// RemoteAddr returns the peer address, for diagnostics.
func (c *Conn) RemoteAddr() string {
	if addr := c.conn.RemoteAddr(); addr != nil {
		return addr.String()
	}
	return ""
}

// wrapErr turns a raw I/O error into ErrConnectionLost, unless the caller's
// context was cancelled, in which case the cancellation is reported as is.
func (c *Conn) wrapErr(ctx context.Context, op string, err error) error {
	if ctxErr := ctx.Err(); errors.Is(ctxErr, context.Canceled) {
		return ctxErr
	}
	return fmt.Errorf("%w: %s: %w", ErrConnectionLost, op, err)
}
