// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MarlyasDad

// Package client implements the interactive chat client runtime.
//
// It wires storage, the session supervisor, the history writer and the
// terminal UI into a single process lifecycle.
package client
