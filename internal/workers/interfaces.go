// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MarlyasDad

// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that runs
// several long-lived workers as one unit.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run blocks until the worker is done or ctx is cancelled. A worker that
// stops because ctx was cancelled should return nil.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) error {
//	    <-ctx.Done()
//	    return nil
//	}
type Worker interface {
	Run(ctx context.Context) error
}

// WorkerFunc adapts an ordinary function to the [Worker] interface.
type WorkerFunc func(ctx context.Context) error

// Run calls f(ctx).
func (f WorkerFunc) Run(ctx context.Context) error {
	return f(ctx)
}
