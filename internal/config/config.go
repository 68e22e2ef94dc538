// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MarlyasDad

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the chat
// client. It aggregates all sub-configurations and is populated by merging
// defaults, environment variables, command-line flags, and an optional JSON
// file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Connection holds the chat service address and the two channel ports.
	Connection Connection `envPrefix:"CONNECTION_"`

	// Storage holds paths of the token file and the message history.
	Storage Storage `envPrefix:"STORAGE_"`

	// Session holds handshake and liveness settings of a connected session.
	Session Session `envPrefix:"SESSION_"`

	// App holds process-level settings such as the diagnostic log path.
	App App `envPrefix:"APP_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from defaults, environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Connection describes where the chat service lives.
type Connection struct {
	// Host is the DNS name or IP address of the chat service.
	// Env: CONNECTION_HOST
	Host string `env:"HOST"`

	// ReadPort is the port of the broadcast (read-only) channel.
	// Env: CONNECTION_READ_PORT
	ReadPort int `env:"READ_PORT"`

	// WritePort is the port of the authenticated sending channel.
	// Env: CONNECTION_WRITE_PORT
	WritePort int `env:"WRITE_PORT"`

	// Port is the single channel port of the reader and sender commands.
	// Zero means ReadPort for the reader and WritePort for the sender.
	// Env: CONNECTION_PORT
	Port int `env:"PORT"`
}

// Storage groups the on-disk state of the client.
type Storage struct {
	// HistoryPath is the plain text file every received line is appended to.
	// Env: STORAGE_HISTORY_PATH
	HistoryPath string `env:"HISTORY_PATH"`

	// HistoryDSN switches history persistence to SQLite when non-empty
	// (e.g. "./chat_history.db").
	// Env: STORAGE_HISTORY_DSN
	HistoryDSN string `env:"HISTORY_DSN"`

	// TokenPath is the file holding the account token.
	// Env: STORAGE_TOKEN_PATH
	TokenPath string `env:"TOKEN_PATH"`
}

// Session holds the settings of one connected session and its supervisor.
type Session struct {
	// Nickname is sent to the service when the stored token is rejected
	// and a new account has to be registered.
	// Env: SESSION_NICKNAME
	Nickname string `env:"NICKNAME"`

	// AnonymousToken is the wire value sent in place of a token when none
	// is stored yet.
	// Env: SESSION_ANONYMOUS_TOKEN
	AnonymousToken string `env:"ANONYMOUS_TOKEN"`

	// WatchdogInterval is the pause between keepalive pings (e.g. "15s").
	// Env: SESSION_WATCHDOG_INTERVAL
	WatchdogInterval time.Duration `env:"WATCHDOG_INTERVAL"`

	// WatchdogTimeout bounds a single keepalive ping write (e.g. "10s").
	// Env: SESSION_WATCHDOG_TIMEOUT
	WatchdogTimeout time.Duration `env:"WATCHDOG_TIMEOUT"`

	// ReconnectDelay is the fixed pause before a failed session is
	// restarted (e.g. "5s").
	// Env: SESSION_RECONNECT_DELAY
	ReconnectDelay time.Duration `env:"RECONNECT_DELAY"`

	// MaxAttempts limits how many times a failed session is restarted.
	// Zero means retry forever.
	// Env: SESSION_MAX_ATTEMPTS
	MaxAttempts int `env:"MAX_ATTEMPTS"`
}

// App holds process-level settings.
type App struct {
	// LogPath is the file diagnostic logs are written to.
	// Env: APP_LOG_PATH
	LogPath string `env:"LOG_PATH"`

	// Message is the single message sent by the one-shot sender.
	// Env: APP_MESSAGE
	Message string `env:"MESSAGE"`

	// ShowVersion asks the command to print its build info and exit.
	// Flag only.
	ShowVersion bool
}

// Defaults used when no source provides a value.
const (
	DefaultHost             = "minechat.dvmn.org"
	DefaultReadPort         = 5000
	DefaultWritePort        = 5050
	DefaultHistoryPath      = "./chat_history.txt"
	DefaultTokenPath        = "./chat_token.txt"
	DefaultLogPath          = "./chat.log"
	DefaultNickname         = "Anonymous"
	DefaultAnonymousToken   = "None"
	DefaultWatchdogInterval = 15 * time.Second
	DefaultWatchdogTimeout  = 10 * time.Second
	DefaultReconnectDelay   = 5 * time.Second
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Connection: Connection{
			Host:      DefaultHost,
			ReadPort:  DefaultReadPort,
			WritePort: DefaultWritePort,
		},
		Storage: Storage{
			HistoryPath: DefaultHistoryPath,
			TokenPath:   DefaultTokenPath,
		},
		Session: Session{
			Nickname:         DefaultNickname,
			AnonymousToken:   DefaultAnonymousToken,
			WatchdogInterval: DefaultWatchdogInterval,
			WatchdogTimeout:  DefaultWatchdogTimeout,
			ReconnectDelay:   DefaultReconnectDelay,
		},
		App: App{
			LogPath: DefaultLogPath,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Defaults
//  2. Environment variables
//  3. Command-line flags from args (without the program name)
//  4. JSON file (path resolved from sources 2 and 3)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
