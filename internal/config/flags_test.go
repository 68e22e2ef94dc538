// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MarlyasDad

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := ParseFlags([]string{
		"--host", "chat.local",
		"--r_port", "6000",
		"--w_port", "6050",
		"--port", "7000",
		"--history", "/tmp/h.txt",
		"--history-dsn", "/tmp/h.db",
		"--token", "/tmp/token.txt",
		"--nickname", "bob",
		"--anonymous-token", "null",
		"--log", "/tmp/chat.log",
		"--message", "hi all",
		"--watchdog-interval", "30s",
		"--watchdog-timeout", "3s",
		"--reconnect-delay", "1m",
		"--max-attempts", "4",
		"--version",
		"-c", "/tmp/config.json",
	})
	require.NoError(t, err)

	assert.Equal(t, Connection{Host: "chat.local", ReadPort: 6000, WritePort: 6050, Port: 7000}, cfg.Connection)
	assert.Equal(t, Storage{HistoryPath: "/tmp/h.txt", HistoryDSN: "/tmp/h.db", TokenPath: "/tmp/token.txt"}, cfg.Storage)
	assert.Equal(t, Session{
		Nickname:         "bob",
		AnonymousToken:   "null",
		WatchdogInterval: 30 * time.Second,
		WatchdogTimeout:  3 * time.Second,
		ReconnectDelay:   time.Minute,
		MaxAttempts:      4,
	}, cfg.Session)
	assert.Equal(t, App{LogPath: "/tmp/chat.log", Message: "hi all", ShowVersion: true}, cfg.App)
	assert.Equal(t, "/tmp/config.json", cfg.JSONFilePath)
}

func TestParseFlags_NoArgsIsZeroValue(t *testing.T) {
	cfg, err := ParseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown flag", args: []string{"--bogus", "5000"}},
		{name: "single port not a number", args: []string{"--port", "abc"}},
		{name: "port not a number", args: []string{"--r_port", "abc"}},
		{name: "bad duration", args: []string{"--reconnect-delay", "soon"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFlags(tt.args)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "error parsing flags")
		})
	}
}
