// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MarlyasDad

// Command sender registers or logs in on the write channel, sends a single
// message and exits.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/MarlyasDad/cheat-chat/internal/config"
	"github.com/MarlyasDad/cheat-chat/internal/logger"
	"github.com/MarlyasDad/cheat-chat/internal/queue"
	"github.com/MarlyasDad/cheat-chat/internal/service"
	"github.com/MarlyasDad/cheat-chat/internal/store"
	"github.com/MarlyasDad/cheat-chat/internal/transport"
	"github.com/MarlyasDad/cheat-chat/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	info := models.NewBuildInfo("cheat-chat-sender", buildVersion, buildDate, buildCommit)
	log := logger.NewLogger(info.App, os.Stderr)

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.ShowVersion {
		fmt.Println(info)
		return
	}
	if strings.TrimSpace(cfg.App.Message) == "" {
		log.Fatal().Msg("nothing to send: --message is empty")
	}

	log.Debug().EmbedObject(info).Int("port", cfg.Connection.SenderPort()).Msg("starting sender")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// the sender has no status bar; events are dropped with the queue
	status := queue.New[models.StatusEvent]()
	auth := service.NewAuthenticator(store.NewFileTokenStore(cfg.Storage.TokenPath), status, cfg.Session, log)
	sender := service.NewSender(cfg.Connection, transport.NewDialer(), auth, log)

	account, err := sender.Send(ctx, cfg.App.Message)
	if err != nil {
		log.Fatal().Err(err).Msg("send failed")
	}

	fmt.Printf("sent as %s\n", account.Nickname)
}
