// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MarlyasDad

package service

import (
	"bufio"
	"context"
	"io"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/MarlyasDad/cheat-chat/internal/transport"
)

const (
	testGreeting = "Hello %username%! Enter your personal hash or leave it empty to create new account."
	testInfo     = "Enter preferred nickname below:"
)

// chatPeer is the service side of an in-memory channel.
type chatPeer struct {
	conn net.Conn
	r    *bufio.Reader
}

func newChatPipe(t *testing.T) (*transport.Conn, *chatPeer) {
	t.Helper()
	client, server := net.Pipe()
	t.Cleanup(func() {
		client.Close()
		server.Close()
	})
	return transport.NewConn(client), &chatPeer{conn: server, r: bufio.NewReader(server)}
}

func (p *chatPeer) send(line string) error {
	_ = p.conn.SetWriteDeadline(time.Now().Add(2 * time.Second))
	_, err := io.WriteString(p.conn, line+"\n")
	return err
}

func (p *chatPeer) recv() (string, error) {
	_ = p.conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	line, err := p.r.ReadString('\n')
	return strings.TrimSuffix(line, "\n"), err
}

// recvUntilClosed reads without a deadline until the client side goes away.
// Lines are forwarded to lines unless it is nil.
func (p *chatPeer) recvUntilClosed(lines chan<- string) {
	_ = p.conn.SetReadDeadline(time.Time{})
	for {
		line, err := p.r.ReadString('\n')
		if err != nil {
			return
		}
		if lines != nil {
			lines <- strings.TrimSuffix(line, "\n")
		}
	}
}

type dialerFunc func(ctx context.Context, host string, port int) (transport.LineConn, error)

func (f dialerFunc) Dial(ctx context.Context, host string, port int) (transport.LineConn, error) {
	return f(ctx, host, port)
}

type sessionRunnerFunc func(ctx context.Context) error

func (f sessionRunnerFunc) Run(ctx context.Context) error {
	return f(ctx)
}

func testContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx
}
