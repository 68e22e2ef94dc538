// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MarlyasDad

package service

import (
	"context"

	"github.com/MarlyasDad/cheat-chat/internal/transport"
	"github.com/MarlyasDad/cheat-chat/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// Authenticator runs the login or registration handshake on a freshly
// dialed write channel.
type Authenticator interface {
	// Authenticate returns the account the service accepted. Any failure to
	// obtain a usable account is reported as [ErrInvalidToken].
	Authenticate(ctx context.Context, conn transport.LineConn) (models.Account, error)
}

// SessionRunner runs one connected session until it fails or ctx is
// cancelled.
type SessionRunner interface {
	Run(ctx context.Context) error
}
