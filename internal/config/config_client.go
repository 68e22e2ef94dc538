// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MarlyasDad

package config

import (
	"fmt"
	"time"
)

// ClientConnection holds the chat service address.
type ClientConnection struct {
	// Host is the chat service host name or IP.
	Host string
	// ReadPort is the broadcast channel port.
	ReadPort int
	// WritePort is the sending channel port.
	WritePort int
	// Port overrides the port of the single channel commands.
	Port int
}

// ReaderPort is the port the single channel reader listens on.
func (c ClientConnection) ReaderPort() int {
	if c.Port != 0 {
		return c.Port
	}
	return c.ReadPort
}

// SenderPort is the port the one-shot sender writes to.
func (c ClientConnection) SenderPort() int {
	if c.Port != 0 {
		return c.Port
	}
	return c.WritePort
}

// ClientStorage groups client storage settings.
type ClientStorage struct {
	// HistoryPath is the plain text history file.
	HistoryPath string
	// HistoryDSN selects the SQLite history backend when non-empty.
	HistoryDSN string
	// TokenPath is the token file.
	TokenPath string
}

// ClientSession contains handshake, watchdog and reconnect settings.
type ClientSession struct {
	// Nickname is used to register a new account.
	Nickname string
	// AnonymousToken is sent when no token is stored.
	AnonymousToken string
	// WatchdogInterval is the pause between keepalive pings.
	WatchdogInterval time.Duration
	// WatchdogTimeout bounds a single keepalive ping.
	WatchdogTimeout time.Duration
	// ReconnectDelay is the fixed back-off between session attempts.
	ReconnectDelay time.Duration
	// MaxAttempts bounds reconnects; zero means unlimited.
	MaxAttempts int
}

// ClientApp holds process-level client settings.
type ClientApp struct {
	// LogPath is the diagnostic log file.
	LogPath string
	// Message is the text sent by the one-shot sender.
	Message string
	// ShowVersion prints build info instead of running.
	ShowVersion bool
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig]. It is passed by pointer into the components that need
// it; there is no package-level configuration state.
type ClientConfig struct {
	// Connection contains the service address.
	Connection ClientConnection
	// Storage contains token and history locations.
	Storage ClientStorage
	// Session contains session orchestration settings.
	Session ClientSession
	// App contains process-level settings.
	App ClientApp
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)

	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		Connection: ClientConnection{
			Host:      cfg.Connection.Host,
			ReadPort:  cfg.Connection.ReadPort,
			WritePort: cfg.Connection.WritePort,
			Port:      cfg.Connection.Port,
		},
		Storage: ClientStorage{
			HistoryPath: cfg.Storage.HistoryPath,
			HistoryDSN:  cfg.Storage.HistoryDSN,
			TokenPath:   cfg.Storage.TokenPath,
		},
		Session: ClientSession{
			Nickname:         cfg.Session.Nickname,
			AnonymousToken:   cfg.Session.AnonymousToken,
			WatchdogInterval: cfg.Session.WatchdogInterval,
			WatchdogTimeout:  cfg.Session.WatchdogTimeout,
			ReconnectDelay:   cfg.Session.ReconnectDelay,
			MaxAttempts:      cfg.Session.MaxAttempts,
		},
		App: ClientApp{
			LogPath:     cfg.App.LogPath,
			Message:     cfg.App.Message,
			ShowVersion: cfg.App.ShowVersion,
		},
	}
}
