// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MarlyasDad

package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MarlyasDad/cheat-chat/internal/config"
	"github.com/MarlyasDad/cheat-chat/internal/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestWatchdog(interval, timeout time.Duration) *Watchdog {
	return NewWatchdog(config.ClientSession{WatchdogInterval: interval, WatchdogTimeout: timeout})
}

// TestWatchdog_SendsEmptyLines: каждая проба это пустая строка.
func TestWatchdog_SendsEmptyLines(t *testing.T) {
	ctrl := gomock.NewController(t)
	conn := mock.NewMockLineConn(ctrl)

	ctx, cancel := context.WithCancel(testContext(t))
	var pings atomic.Int32

	conn.EXPECT().WriteLine(gomock.Any(), "").DoAndReturn(func(pingCtx context.Context, _ string) error {
		_, hasDeadline := pingCtx.Deadline()
		assert.True(t, hasDeadline, "ping must run under a timeout")
		if pings.Add(1) == 3 {
			cancel()
		}
		return nil
	}).MinTimes(3)

	err := newTestWatchdog(5*time.Millisecond, time.Second).Run(ctx, conn)
	assert.ErrorIs(t, err, context.Canceled)
	assert.GreaterOrEqual(t, pings.Load(), int32(3))
}

// TestWatchdog_PingTimeout: сервер не читает, проба упирается в таймаут.
func TestWatchdog_PingTimeout(t *testing.T) {
	conn, _ := newChatPipe(t)

	start := time.Now()
	err := newTestWatchdog(10*time.Millisecond, 30*time.Millisecond).Run(testContext(t), conn)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConnectionLost)
	assert.Less(t, time.Since(start), 2*time.Second)
}

// TestWatchdog_WriteFailure: ошибка транспорта превращается в ErrConnectionLost.
func TestWatchdog_WriteFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	conn := mock.NewMockLineConn(ctrl)

	conn.EXPECT().WriteLine(gomock.Any(), "").Return(errors.New("broken pipe"))

	err := newTestWatchdog(time.Millisecond, time.Second).Run(testContext(t), conn)
	assert.ErrorIs(t, err, ErrConnectionLost)
}

// TestWatchdog_PingsReachPeer: пустая строка доходит до сервера как "".
func TestWatchdog_PingsReachPeer(t *testing.T) {
	conn, srv := newChatPipe(t)
	ctx, cancel := context.WithCancel(testContext(t))

	done := make(chan error, 1)
	go func() { done <- newTestWatchdog(5*time.Millisecond, time.Second).Run(ctx, conn) }()

	line, err := srv.recv()
	require.NoError(t, err)
	assert.Equal(t, "", line)

	cancel()
	select {
	case err = <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("watchdog did not stop")
	}
}
