// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MarlyasDad

package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidConnectionConfigs indicates a missing host or a port outside
	// the 1..65535 range.
	ErrInvalidConnectionConfigs = errors.New("invalid connection configuration")
	// ErrInvalidStorageConfigs indicates that neither a history file nor a
	// history DSN is configured, or the token path is empty.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidSessionConfigs indicates non-positive watchdog or reconnect
	// timings, a negative attempt limit, or an empty anonymous token.
	ErrInvalidSessionConfigs = errors.New("invalid session configuration")
)
