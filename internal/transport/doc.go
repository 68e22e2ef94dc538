// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MarlyasDad

// Package transport implements the line-oriented TCP connection used by both
// chat channels.
//
// A [Conn] exchanges UTF-8 text lines terminated by '\n'. Reads and writes
// block until the peer responds or the connection is closed; the only
// explicit timeout is the one a caller places on the context passed to
// [Conn.WriteLine].
package transport
