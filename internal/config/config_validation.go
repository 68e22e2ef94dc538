// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MarlyasDad

package config

import "strings"

// validate checks the client view before any component is built and
// returns the first failing group as a sentinel error.
func (cfg *ClientConfig) validate() error {
	if strings.TrimSpace(cfg.Connection.Host) == "" ||
		!validPort(cfg.Connection.ReadPort) ||
		!validPort(cfg.Connection.WritePort) ||
		(cfg.Connection.Port != 0 && !validPort(cfg.Connection.Port)) {
		return ErrInvalidConnectionConfigs
	}

	if cfg.Storage.TokenPath == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Storage.HistoryPath == "" && cfg.Storage.HistoryDSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Session.WatchdogInterval <= 0 ||
		cfg.Session.WatchdogTimeout <= 0 ||
		cfg.Session.ReconnectDelay <= 0 ||
		cfg.Session.MaxAttempts < 0 ||
		cfg.Session.AnonymousToken == "" {
		return ErrInvalidSessionConfigs
	}

	return nil
}

func validPort(port int) bool {
	return port > 0 && port <= 65535
}
