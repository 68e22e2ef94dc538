// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MarlyasDad

package config

import (
	"flag"
	"fmt"
	"time"
)

// ParseFlags parses all configuration flags from args (without the program
// name). Unset flags keep their zero value so they do not override other
// sources during the merge.
//
// Flags:
//
//	-host chat service host
//	-r_port read (broadcast) channel port
//	-w_port write (sending) channel port
//	-port single channel port of the reader and sender commands
//	-history history file path
//	-history-dsn SQLite history database, replaces the history file
//	-token token file path
//	-nickname nickname used to register a new account
//	-anonymous-token value sent when no token is stored
//	-log diagnostic log file path
//	-message message for the one-shot sender
//	-watchdog-interval pause between keepalive pings (e.g., "15s")
//	-watchdog-timeout timeout of a single keepalive ping (e.g., "10s")
//	-reconnect-delay pause before reconnecting (e.g., "5s")
//	-max-attempts reconnect attempts limit, 0 for unlimited
//	-version print build info and exit
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	var host string
	var readPort, writePort, port int
	var historyPath, historyDSN, tokenPath string
	var nickname, anonymousToken string
	var logPath, message string
	var watchdogInterval, watchdogTimeout, reconnectDelay time.Duration
	var maxAttempts int
	var showVersion bool
	var jsonConfigPath string

	fs := flag.NewFlagSet("cheat-chat", flag.ContinueOnError)

	fs.StringVar(&host, "host", "", "Chat service host")
	fs.IntVar(&readPort, "r_port", 0, "Read channel port")
	fs.IntVar(&writePort, "w_port", 0, "Write channel port")
	fs.IntVar(&port, "port", 0, "Single channel port (reader and sender)")
	fs.StringVar(&historyPath, "history", "", "History file path")
	fs.StringVar(&historyDSN, "history-dsn", "", "SQLite history database path")
	fs.StringVar(&tokenPath, "token", "", "Token file path")
	fs.StringVar(&nickname, "nickname", "", "Nickname for registration")
	fs.StringVar(&anonymousToken, "anonymous-token", "", "Value sent when no token is stored")
	fs.StringVar(&logPath, "log", "", "Diagnostic log file path")
	fs.StringVar(&message, "message", "", "Message for the one-shot sender")
	fs.DurationVar(&watchdogInterval, "watchdog-interval", 0, "Keepalive ping interval (e.g., 15s)")
	fs.DurationVar(&watchdogTimeout, "watchdog-timeout", 0, "Keepalive ping timeout (e.g., 10s)")
	fs.DurationVar(&reconnectDelay, "reconnect-delay", 0, "Reconnect delay (e.g., 5s)")
	fs.IntVar(&maxAttempts, "max-attempts", 0, "Reconnect attempts limit, 0 for unlimited")
	fs.BoolVar(&showVersion, "version", false, "Print build info and exit")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Connection: Connection{
			Host:      host,
			ReadPort:  readPort,
			WritePort: writePort,
			Port:      port,
		},
		Storage: Storage{
			HistoryPath: historyPath,
			HistoryDSN:  historyDSN,
			TokenPath:   tokenPath,
		},
		Session: Session{
			Nickname:         nickname,
			AnonymousToken:   anonymousToken,
			WatchdogInterval: watchdogInterval,
			WatchdogTimeout:  watchdogTimeout,
			ReconnectDelay:   reconnectDelay,
			MaxAttempts:      maxAttempts,
		},
		App: App{
			LogPath: logPath,
			Message:     message,
			ShowVersion: showVersion,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
