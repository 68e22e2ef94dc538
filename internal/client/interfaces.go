// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MarlyasDad

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// UI is the interactive surface. Run blocks until the user leaves, ctx is
// done, or an error received on fatal has been shown to the user.
type UI interface {
	Run(ctx context.Context, fatal <-chan error) error
}

// HistoryReplayer loads stored history onto the display queue.
type HistoryReplayer interface {
	Replay(ctx context.Context) (int, error)
}
