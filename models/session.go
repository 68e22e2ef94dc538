// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MarlyasDad

package models

import "fmt"

// SessionState describes where a single session orchestrator invocation is:
//
//	Idle -> Connecting -> Authenticated -> Running -> {Failed | Cancelled}
type SessionState int

const (
	SessionIdle SessionState = iota
	SessionConnecting
	SessionAuthenticated
	SessionRunning
	SessionFailed
	SessionCancelled
)

func (s SessionState) String() string {
	switch s {
	case SessionIdle:
		return "idle"
	case SessionConnecting:
		return "connecting"
	case SessionAuthenticated:
		return "authenticated"
	case SessionRunning:
		return "running"
	case SessionFailed:
		return "failed"
	case SessionCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("SessionState(%d)", int(s))
	}
}
