// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MarlyasDad

package service

import (
	"context"

	"github.com/MarlyasDad/cheat-chat/internal/transport"
)

// closeOnDone closes conn as soon as ctx is done so that blocked reads and
// writes return. The returned stop function detaches the hook.
func closeOnDone(ctx context.Context, conn transport.LineConn) (stop func() bool) {
	return context.AfterFunc(ctx, func() { _ = conn.Close() })
}
