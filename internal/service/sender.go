// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MarlyasDad

package service

import (
	"context"

	"github.com/MarlyasDad/cheat-chat/internal/config"
	"github.com/MarlyasDad/cheat-chat/internal/logger"
	"github.com/MarlyasDad/cheat-chat/internal/transport"
	"github.com/MarlyasDad/cheat-chat/models"
)

// Sender delivers a single message over a fresh write channel without
// starting a full session.
type Sender struct {
	host   string
	port   int
	dialer transport.Dialer
	auth   Authenticator
	logger *logger.Logger
}

// NewSender builds a one-shot sender for the write channel in cfg.
func NewSender(cfg config.ClientConnection, dialer transport.Dialer, auth Authenticator, logger *logger.Logger) *Sender {
	return &Sender{
		host:   cfg.Host,
		port:   cfg.SenderPort(),
		dialer: dialer,
		auth:   auth,
		logger: logger,
	}
}

// Send authenticates, registering if needed, and sends text. It returns
// the account the message was sent from.
func (s *Sender) Send(ctx context.Context, text string) (models.Account, error) {
	ctx = s.logger.WithContext(ctx)

	conn, err := s.dialer.Dial(ctx, s.host, s.port)
	if err != nil {
		return models.Account{}, err
	}
	defer conn.Close()
	defer closeOnDone(ctx, conn)()

	account, err := s.auth.Authenticate(ctx, conn)
	if err != nil {
		return models.Account{}, err
	}

	if err = conn.WriteLine(ctx, models.SanitizeOutbound(text)+"\n"); err != nil {
		return models.Account{}, err
	}

	s.logger.Info().Str("func", "Sender.Send").Str("nickname", account.Nickname).Msg("message sent")
	return account, nil
}
