// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MarlyasDad

// Package queue provides the unbounded FIFO queues that connect the network
// tasks, the history writer and the terminal UI.
//
// Each queue has a single consumer. Producers never block: Put always
// succeeds immediately, so a slow consumer cannot stall socket I/O.
package queue

import (
	"context"
	"sync"
)

// Queue is an unbounded, goroutine-safe FIFO queue.
// The zero value is not usable; create queues with [New].
type Queue[T any] struct {
	mu     sync.Mutex
	items  []T
	notify chan struct{}
}

// New returns an empty queue.
func New[T any]() *Queue[T] {
	return &Queue[T]{notify: make(chan struct{}, 1)}
}

// Put appends v to the tail of the queue. It never blocks.
func (q *Queue[T]) Put(v T) {
	q.mu.Lock()
	q.items = append(q.items, v)
	q.mu.Unlock()

	select {
	case q.notify <- struct{}{}:
	default:
	}
}

// Get removes and returns the head of the queue, blocking until an item is
// available or ctx is done.
func (q *Queue[T]) Get(ctx context.Context) (T, error) {
	for {
		if v, ok := q.TryGet(); ok {
			return v, nil
		}

		select {
		case <-ctx.Done():
			var zero T
			return zero, ctx.Err()
		case <-q.notify:
		}
	}
}

// TryGet removes and returns the head of the queue without blocking.
func (q *Queue[T]) TryGet() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	var zero T
	if len(q.items) == 0 {
		return zero, false
	}

	v := q.items[0]
	q.items[0] = zero
	q.items = q.items[1:]

	// wake the next waiter if more items are pending
	if len(q.items) > 0 {
		select {
		case q.notify <- struct{}{}:
		default:
		}
	}

	return v, true
}

// Drain removes and returns every queued item in FIFO order.
func (q *Queue[T]) Drain() []T {
	q.mu.Lock()
	defer q.mu.Unlock()

	items := q.items
	q.items = nil
	return items
}

// Len returns the number of queued items.
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}
