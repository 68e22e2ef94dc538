// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MarlyasDad

package service

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/MarlyasDad/cheat-chat/internal/config"
	"github.com/MarlyasDad/cheat-chat/internal/logger"
	"github.com/MarlyasDad/cheat-chat/internal/queue"
	"github.com/MarlyasDad/cheat-chat/internal/transport"
	"github.com/MarlyasDad/cheat-chat/models"
)

// StateObserver is notified of every session state transition.
type StateObserver func(sessionID string, state models.SessionState)

// Session runs one connected session: the read task, the write task with
// its handshake and the watchdog. The first task failure cancels the others.
type Session struct {
	host      string
	readPort  int
	writePort int

	dialer   transport.Dialer
	auth     Authenticator
	reader   *ReadLoop
	writer   *WriteLoop
	watchdog *Watchdog
	status   *queue.Queue[models.StatusEvent]

	observer StateObserver
	logger   *logger.Logger
}

// NewSession assembles a session from its collaborators. The observer may
// be nil.
func NewSession(
	cfg *config.ClientConfig,
	dialer transport.Dialer,
	auth Authenticator,
	queues Queues,
	observer StateObserver,
	logger *logger.Logger,
) *Session {
	return &Session{
		host:      cfg.Connection.Host,
		readPort:  cfg.Connection.ReadPort,
		writePort: cfg.Connection.WritePort,
		dialer:    dialer,
		auth:      auth,
		reader:    NewReadLoop(queues),
		writer:    NewWriteLoop(queues),
		watchdog:  NewWatchdog(cfg.Session),
		status:    queues.Status,
		observer:  observer,
		logger:    logger,
	}
}

// sessionRun is the state of a single Run invocation.
type sessionRun struct {
	*Session
	id    string
	log   *logger.Logger
	group *errgroup.Group
	mu    sync.Mutex
	state models.SessionState
	ready int
}

// Run connects both channels and blocks until the session ends. The result
// is one of [ErrConnect], [ErrConnectionLost], [ErrInvalidToken] or
// [context.Canceled]; all tasks have exited and both connections are closed
// by the time it returns.
func (s *Session) Run(ctx context.Context) error {
	id := newSessionID()
	log := s.logger.GetChildLogger()
	log.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("session_id", id)
	})
	ctx = log.WithContext(ctx)

	g, gctx := errgroup.WithContext(ctx)
	run := &sessionRun{Session: s, id: id, log: log, group: g}

	run.setState(models.SessionIdle)
	run.setState(models.SessionConnecting)

	g.Go(func() error { return run.readTask(gctx) })
	g.Go(func() error { return run.writeTask(gctx) })

	err := classifySessionError(g.Wait())
	if errors.Is(err, context.Canceled) {
		run.setState(models.SessionCancelled)
	} else {
		run.setState(models.SessionFailed)
	}

	log.Info().Err(err).Str("func", "Session.Run").Msg("session finished")
	return err
}

func (r *sessionRun) readTask(ctx context.Context) error {
	r.status.Put(models.NewReadStateChanged(models.ConnectionInitiated))

	conn, err := r.dialer.Dial(ctx, r.host, r.readPort)
	if err != nil {
		return err
	}
	defer conn.Close()
	defer closeOnDone(ctx, conn)()

	r.status.Put(models.NewReadStateChanged(models.ConnectionEstablished))
	r.log.Debug().Str("func", "Session.readTask").Int("port", r.readPort).Msg("read channel established")
	r.markReady()

	return r.reader.Run(ctx, conn)
}

func (r *sessionRun) writeTask(ctx context.Context) error {
	r.status.Put(models.NewSendStateChanged(models.ConnectionInitiated))

	conn, err := r.dialer.Dial(ctx, r.host, r.writePort)
	if err != nil {
		return err
	}
	defer conn.Close()
	defer closeOnDone(ctx, conn)()

	r.status.Put(models.NewSendStateChanged(models.ConnectionEstablished))
	r.log.Debug().Str("func", "Session.writeTask").Int("port", r.writePort).Msg("write channel established")

	if _, err = r.auth.Authenticate(ctx, conn); err != nil {
		return err
	}
	r.setState(models.SessionAuthenticated)
	r.markReady()

	r.group.Go(func() error { return r.watchdog.Run(ctx, conn) })

	return r.writer.Run(ctx, conn)
}

// markReady moves the session to Running once the read channel is up and
// the write channel is authenticated.
func (r *sessionRun) markReady() {
	r.mu.Lock()
	r.ready++
	ready := r.ready
	r.mu.Unlock()

	if ready == 2 {
		r.setState(models.SessionRunning)
	}
}

func (r *sessionRun) setState(state models.SessionState) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// a task may still report progress after the session has ended
	if r.state == models.SessionFailed || r.state == models.SessionCancelled {
		return
	}
	r.state = state

	r.log.Info().Str("func", "Session.setState").Stringer("state", state).Msg("session state changed")
	if r.observer != nil {
		r.observer(r.id, state)
	}
}

// newSessionID returns a time-ordered id so log lines of consecutive
// sessions sort by start time.
func newSessionID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return v7.String()
}
