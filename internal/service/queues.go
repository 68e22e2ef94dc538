// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MarlyasDad

package service

import (
	"github.com/MarlyasDad/cheat-chat/internal/queue"
	"github.com/MarlyasDad/cheat-chat/models"
)

// Queues are the four channels between network tasks, persistence and the
// user interface. Each queue has a single consumer:
//
//   - Display: read loop and history replay produce, the UI consumes.
//   - Sending: the UI produces, the write loop consumes.
//   - Status: session tasks produce, the UI consumes.
//   - History: the read loop produces, the history appender consumes.
type Queues struct {
	Display *queue.Queue[string]
	Sending *queue.Queue[string]
	Status  *queue.Queue[models.StatusEvent]
	History *queue.Queue[string]
}

// NewQueues allocates an empty set of queues.
func NewQueues() Queues {
	return Queues{
		Display: queue.New[string](),
		Sending: queue.New[string](),
		Status:  queue.New[models.StatusEvent](),
		History: queue.New[string](),
	}
}
