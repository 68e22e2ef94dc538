// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MarlyasDad

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MarlyasDad/cheat-chat/internal/transport"
)

// Session error kinds. Every error leaving [Session.Run] matches exactly one
// of these or [context.Canceled].
var (
	// ErrConnect is returned when a channel could not be dialed.
	ErrConnect = transport.ErrConnect

	// ErrConnectionLost is returned when an established channel broke, a
	// keepalive ping timed out or the peer closed the stream.
	ErrConnectionLost = transport.ErrConnectionLost

	// ErrInvalidToken is returned when the service rejects the handshake in a
	// way the client cannot recover from on its own. It is never retried.
	ErrInvalidToken = errors.New("invalid token")
)

// classifySessionError maps any error produced by session tasks to one of
// the session error kinds. Unknown failures count as a lost connection.
func classifySessionError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrInvalidToken),
		errors.Is(err, ErrConnect),
		errors.Is(err, ErrConnectionLost),
		errors.Is(err, context.Canceled):
		return err
	default:
		return fmt.Errorf("%w: %w", ErrConnectionLost, err)
	}
}
