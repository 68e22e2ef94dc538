// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MarlyasDad

package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MarlyasDad/cheat-chat/internal/config"
	"github.com/MarlyasDad/cheat-chat/internal/logger"
	"github.com/MarlyasDad/cheat-chat/internal/queue"
	"github.com/MarlyasDad/cheat-chat/internal/store"
	"github.com/MarlyasDad/cheat-chat/internal/transport"
	"github.com/MarlyasDad/cheat-chat/models"
)

type authenticator struct {
	tokens         store.TokenStore
	status         *queue.Queue[models.StatusEvent]
	nickname       string
	anonymousToken string
	logger         *logger.Logger
}

// NewAuthenticator builds the write channel handshake. On success it emits
// exactly one NicknameReceived event on status; a registration also
// persists the new account hash through tokens.
func NewAuthenticator(tokens store.TokenStore, status *queue.Queue[models.StatusEvent], cfg config.ClientSession, logger *logger.Logger) Authenticator {
	return &authenticator{
		tokens:         tokens,
		status:         status,
		nickname:       cfg.Nickname,
		anonymousToken: cfg.AnonymousToken,
		logger:         logger,
	}
}

func (a *authenticator) Authenticate(ctx context.Context, conn transport.LineConn) (models.Account, error) {
	log := logger.FromContextOr(ctx, a.logger)

	greeting, err := conn.ReadLine(ctx)
	if err != nil {
		return models.Account{}, err
	}
	log.Debug().Str("func", "authenticator.Authenticate").Str("greeting", models.DisplayForm(greeting)).Msg("greeting received")

	token, err := a.tokens.Load(ctx)
	if err != nil {
		return models.Account{}, fmt.Errorf("load token: %w", err)
	}
	if token == "" {
		token = a.anonymousToken
	}

	if err = conn.WriteLine(ctx, token); err != nil {
		return models.Account{}, err
	}

	reply, err := conn.ReadLine(ctx)
	if err != nil {
		return models.Account{}, err
	}

	account, accepted, err := parseLoginReply(reply)
	if err != nil {
		log.Error().Str("func", "authenticator.Authenticate").Str("reply", models.DisplayForm(reply)).Msg("unexpected login reply")
		return models.Account{}, err
	}

	if !accepted {
		info, readErr := conn.ReadLine(ctx)
		if readErr != nil {
			return models.Account{}, readErr
		}
		log.Info().Str("func", "authenticator.Authenticate").Str("info", models.DisplayForm(info)).Msg("token rejected, registering")

		account, err = a.register(ctx, conn)
		if err != nil {
			return models.Account{}, err
		}
	}

	log.Info().Str("func", "authenticator.Authenticate").Str("nickname", account.Nickname).Msg("authorized")
	a.status.Put(models.NewNicknameReceived(account.Nickname))

	return account, nil
}

func (a *authenticator) register(ctx context.Context, conn transport.LineConn) (models.Account, error) {
	log := logger.FromContextOr(ctx, a.logger)

	if err := conn.WriteLine(ctx, models.SanitizeOutbound(a.nickname)); err != nil {
		return models.Account{}, err
	}

	reply, err := conn.ReadLine(ctx)
	if err != nil {
		return models.Account{}, err
	}

	var account models.Account
	if err = json.Unmarshal([]byte(reply), &account); err != nil {
		return models.Account{}, fmt.Errorf("%w: malformed registration reply: %w", ErrInvalidToken, err)
	}
	if !account.IsComplete() {
		return models.Account{}, fmt.Errorf("%w: incomplete registration reply", ErrInvalidToken)
	}

	if err = a.tokens.Save(ctx, account.AccountHash); err != nil {
		// the account is still usable for this session
		log.Err(err).Str("func", "authenticator.register").Msg("failed to persist new token")
	}

	return account, nil
}

// parseLoginReply decodes the reply to a token. accepted is false when the
// service answered with a falsy JSON value, which means the token was
// rejected and registration should follow.
func parseLoginReply(reply string) (account models.Account, accepted bool, err error) {
	var raw any
	if err = json.Unmarshal([]byte(reply), &raw); err != nil {
		return models.Account{}, false, fmt.Errorf("%w: malformed login reply: %w", ErrInvalidToken, err)
	}

	if isFalsy(raw) {
		return models.Account{}, false, nil
	}

	if _, isObject := raw.(map[string]any); !isObject {
		return models.Account{}, false, fmt.Errorf("%w: login reply is not an object", ErrInvalidToken)
	}

	if err = json.Unmarshal([]byte(reply), &account); err != nil || !account.IsComplete() {
		return models.Account{}, false, fmt.Errorf("%w: incomplete login reply", ErrInvalidToken)
	}

	return account, true, nil
}

func isFalsy(v any) bool {
	switch value := v.(type) {
	case nil:
		return true
	case bool:
		return !value
	case float64:
		return value == 0
	case string:
		return value == ""
	case []any:
		return len(value) == 0
	case map[string]any:
		return len(value) == 0
	default:
		return false
	}
}
