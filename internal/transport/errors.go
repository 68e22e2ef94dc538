// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MarlyasDad

package transport

import "errors"

var (
	// ErrConnect is returned by [Dial] when the host cannot be resolved or
	// the connection is refused or unreachable.
	ErrConnect = errors.New("connect error")

	// ErrConnectionLost is returned when an established connection fails
	// mid-session: EOF, reset, broken pipe or an expired write deadline.
	ErrConnectionLost = errors.New("connection lost")
)
