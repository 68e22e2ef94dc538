// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MarlyasDad

package service

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MarlyasDad/cheat-chat/internal/config"
	"github.com/MarlyasDad/cheat-chat/internal/logger"
	"github.com/MarlyasDad/cheat-chat/internal/mock"
	"github.com/MarlyasDad/cheat-chat/internal/queue"
	"github.com/MarlyasDad/cheat-chat/internal/store"
	"github.com/MarlyasDad/cheat-chat/internal/transport"
	"github.com/MarlyasDad/cheat-chat/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type authResult struct {
	account models.Account
	err     error
}

func newTestAuthenticator(t *testing.T, nickname string) (Authenticator, *mock.MockTokenStore, *queue.Queue[models.StatusEvent]) {
	t.Helper()
	ctrl := gomock.NewController(t)
	tokens := mock.NewMockTokenStore(ctrl)
	status := queue.New[models.StatusEvent]()

	cfg := config.ClientSession{Nickname: nickname, AnonymousToken: "None"}
	return NewAuthenticator(tokens, status, cfg, logger.Nop()), tokens, status
}

func startAuth(ctx context.Context, auth Authenticator, conn transport.LineConn) <-chan authResult {
	done := make(chan authResult, 1)
	go func() {
		account, err := auth.Authenticate(ctx, conn)
		done <- authResult{account: account, err: err}
	}()
	return done
}

func waitAuth(t *testing.T, done <-chan authResult) authResult {
	t.Helper()
	select {
	case res := <-done:
		return res
	case <-time.After(3 * time.Second):
		t.Fatal("handshake did not finish")
		return authResult{}
	}
}

// ── Authenticate ─────────────────────────────────────────────────────────────

// TestAuthenticate_KnownToken: сохранённый токен принят, регистрация не нужна.
func TestAuthenticate_KnownToken(t *testing.T) {
	ctx := testContext(t)
	auth, tokens, status := newTestAuthenticator(t, "bob")
	conn, srv := newChatPipe(t)

	tokens.EXPECT().Load(gomock.Any()).Return("abc123", nil)

	done := startAuth(ctx, auth, conn)

	require.NoError(t, srv.send(testGreeting))
	got, err := srv.recv()
	require.NoError(t, err)
	assert.Equal(t, "abc123", got)
	require.NoError(t, srv.send(`{"nickname": "bob", "account_hash": "abc123"}`))

	res := waitAuth(t, done)
	require.NoError(t, res.err)
	assert.Equal(t, models.Account{Nickname: "bob", AccountHash: "abc123"}, res.account)

	require.Equal(t, 1, status.Len())
	ev, _ := status.TryGet()
	assert.Equal(t, models.NewNicknameReceived("bob"), ev)
}

// TestAuthenticate_UsesOwnLogger: без логгера в контексте рукопожатие пишет
// в логгер, переданный в конструктор.
func TestAuthenticate_UsesOwnLogger(t *testing.T) {
	ctx := testContext(t)
	ctrl := gomock.NewController(t)
	tokens := mock.NewMockTokenStore(ctrl)
	var buf bytes.Buffer
	cfg := config.ClientSession{Nickname: "bob", AnonymousToken: "None"}
	auth := NewAuthenticator(tokens, queue.New[models.StatusEvent](), cfg, logger.NewLogger("test", &buf))
	conn, srv := newChatPipe(t)

	tokens.EXPECT().Load(gomock.Any()).Return("abc123", nil)

	done := startAuth(ctx, auth, conn)

	require.NoError(t, srv.send(testGreeting))
	_, err := srv.recv()
	require.NoError(t, err)
	require.NoError(t, srv.send(`{"nickname": "bob", "account_hash": "abc123"}`))

	res := waitAuth(t, done)
	require.NoError(t, res.err)
	assert.Contains(t, buf.String(), "greeting received")
}

// TestAuthenticate_RegistersWithoutToken: токена нет, отправляется "None",
// сервер отвечает null, клиент регистрирует ник и сохраняет account_hash.
func TestAuthenticate_RegistersWithoutToken(t *testing.T) {
	ctx := testContext(t)
	auth, tokens, status := newTestAuthenticator(t, "bob")
	conn, srv := newChatPipe(t)

	gomock.InOrder(
		tokens.EXPECT().Load(gomock.Any()).Return("", nil),
		tokens.EXPECT().Save(gomock.Any(), "abc123").Return(nil),
	)

	done := startAuth(ctx, auth, conn)

	require.NoError(t, srv.send(testGreeting))
	got, err := srv.recv()
	require.NoError(t, err)
	assert.Equal(t, "None", got)

	require.NoError(t, srv.send("null"))
	require.NoError(t, srv.send(testInfo))

	got, err = srv.recv()
	require.NoError(t, err)
	assert.Equal(t, "bob", got)

	require.NoError(t, srv.send(`{"nickname": "bob", "account_hash": "abc123"}`))

	res := waitAuth(t, done)
	require.NoError(t, res.err)
	assert.Equal(t, "bob", res.account.Nickname)

	require.Equal(t, 1, status.Len())
	ev, _ := status.TryGet()
	assert.Equal(t, models.NicknameReceived, ev.Kind)
	assert.Equal(t, "bob", ev.Nickname)
}

// TestAuthenticate_RegistersWithPersistedToken проверяет связку с файловым
// хранилищем токена: после регистрации файл содержит ровно account_hash.
func TestAuthenticate_RegistersWithPersistedToken(t *testing.T) {
	ctx := testContext(t)
	conn, srv := newChatPipe(t)

	dir := t.TempDir()
	tokenPath := filepath.Join(dir, "token.txt")
	status := queue.New[models.StatusEvent]()
	auth := NewAuthenticator(store.NewFileTokenStore(tokenPath), status, config.ClientSession{Nickname: "bob", AnonymousToken: "None"}, logger.Nop())

	done := startAuth(ctx, auth, conn)

	require.NoError(t, srv.send(testGreeting))
	_, err := srv.recv()
	require.NoError(t, err)
	require.NoError(t, srv.send("null"))
	require.NoError(t, srv.send(testInfo))
	_, err = srv.recv()
	require.NoError(t, err)
	require.NoError(t, srv.send(`{"nickname": "bob", "account_hash": "abc123"}`))

	require.NoError(t, waitAuth(t, done).err)

	data, err := os.ReadFile(tokenPath)
	require.NoError(t, err)
	assert.Equal(t, "abc123", string(data))
}

// TestAuthenticate_SanitizesNickname: переводы строк в нике не уходят в сеть.
func TestAuthenticate_SanitizesNickname(t *testing.T) {
	ctx := testContext(t)
	auth, tokens, _ := newTestAuthenticator(t, "bo\r\nb")
	conn, srv := newChatPipe(t)

	tokens.EXPECT().Load(gomock.Any()).Return("", nil)
	tokens.EXPECT().Save(gomock.Any(), "h").Return(nil)

	done := startAuth(ctx, auth, conn)

	require.NoError(t, srv.send(testGreeting))
	_, err := srv.recv()
	require.NoError(t, err)
	require.NoError(t, srv.send("false"))
	require.NoError(t, srv.send(testInfo))

	got, err := srv.recv()
	require.NoError(t, err)
	assert.Equal(t, "bob", got)

	require.NoError(t, srv.send(`{"nickname": "bob", "account_hash": "h"}`))
	require.NoError(t, waitAuth(t, done).err)
}

// TestAuthenticate_MalformedReply: битый JSON даёт ErrInvalidToken, дальше
// клиент ничего не пишет и не регистрируется.
func TestAuthenticate_MalformedReply(t *testing.T) {
	ctx := testContext(t)
	auth, tokens, status := newTestAuthenticator(t, "bob")
	conn, srv := newChatPipe(t)

	tokens.EXPECT().Load(gomock.Any()).Return("abc123", nil)

	done := startAuth(ctx, auth, conn)

	require.NoError(t, srv.send(testGreeting))
	_, err := srv.recv()
	require.NoError(t, err)
	require.NoError(t, srv.send("{not json"))

	res := waitAuth(t, done)
	assert.ErrorIs(t, res.err, ErrInvalidToken)
	assert.Zero(t, status.Len())

	_ = srv.conn.SetReadDeadline(time.Now().Add(50 * time.Millisecond))
	_, err = srv.r.ReadString('\n')
	assert.ErrorIs(t, err, os.ErrDeadlineExceeded, "client must not write after a malformed reply")
}

// TestAuthenticate_InvalidRegistrationReply: ответ на регистрацию без полей
// аккаунта даёт ErrInvalidToken, токен не сохраняется.
func TestAuthenticate_InvalidRegistrationReply(t *testing.T) {
	for _, reply := range []string{"null", `{"nickname": "bob"}`, "oops"} {
		t.Run(reply, func(t *testing.T) {
			ctx := testContext(t)
			auth, tokens, status := newTestAuthenticator(t, "bob")
			conn, srv := newChatPipe(t)

			tokens.EXPECT().Load(gomock.Any()).Return("", nil)

			done := startAuth(ctx, auth, conn)

			require.NoError(t, srv.send(testGreeting))
			_, err := srv.recv()
			require.NoError(t, err)
			require.NoError(t, srv.send("null"))
			require.NoError(t, srv.send(testInfo))
			_, err = srv.recv()
			require.NoError(t, err)
			require.NoError(t, srv.send(reply))

			res := waitAuth(t, done)
			assert.ErrorIs(t, res.err, ErrInvalidToken)
			assert.Zero(t, status.Len())
		})
	}
}

// TestAuthenticate_TokenLoadError: ошибка чтения токена не считается
// невалидным токеном.
func TestAuthenticate_TokenLoadError(t *testing.T) {
	ctx := testContext(t)
	auth, tokens, _ := newTestAuthenticator(t, "bob")
	conn, srv := newChatPipe(t)

	tokens.EXPECT().Load(gomock.Any()).Return("", errors.New("permission denied"))

	done := startAuth(ctx, auth, conn)
	require.NoError(t, srv.send(testGreeting))

	res := waitAuth(t, done)
	require.Error(t, res.err)
	assert.NotErrorIs(t, res.err, ErrInvalidToken)
}

// TestAuthenticate_ConnectionLost: сервер закрыл соединение посреди рукопожатия.
func TestAuthenticate_ConnectionLost(t *testing.T) {
	ctx := testContext(t)
	auth, tokens, _ := newTestAuthenticator(t, "bob")
	conn, srv := newChatPipe(t)

	tokens.EXPECT().Load(gomock.Any()).Return("abc123", nil)

	done := startAuth(ctx, auth, conn)
	require.NoError(t, srv.send(testGreeting))
	_, err := srv.recv()
	require.NoError(t, err)
	require.NoError(t, srv.conn.Close())

	res := waitAuth(t, done)
	assert.ErrorIs(t, res.err, ErrConnectionLost)
}

// ── parseLoginReply ──────────────────────────────────────────────────────────

func TestParseLoginReply(t *testing.T) {
	tests := []struct {
		name         string
		reply        string
		wantAccepted bool
		wantErr      bool
	}{
		{name: "null", reply: "null\n"},
		{name: "false", reply: "false"},
		{name: "empty string", reply: `""`},
		{name: "zero", reply: "0"},
		{name: "empty object", reply: "{}"},
		{name: "empty array", reply: "[]"},
		{name: "account", reply: `{"nickname": "bob", "account_hash": "abc123"}` + "\n", wantAccepted: true},
		{name: "malformed", reply: "{", wantErr: true},
		{name: "empty line", reply: "\n", wantErr: true},
		{name: "truthy string", reply: `"yes"`, wantErr: true},
		{name: "non-empty array", reply: "[1]", wantErr: true},
		{name: "missing hash", reply: `{"nickname": "bob"}`, wantErr: true},
		{name: "blank nickname", reply: `{"nickname": "", "account_hash": "x"}`, wantErr: true},
		{name: "wrong field type", reply: `{"nickname": 1, "account_hash": "x"}`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			account, accepted, err := parseLoginReply(tt.reply)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidToken)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantAccepted, accepted)
			if accepted {
				assert.Equal(t, models.Account{Nickname: "bob", AccountHash: "abc123"}, account)
			}
		})
	}
}
