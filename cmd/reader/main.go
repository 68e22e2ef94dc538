// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MarlyasDad

// Command reader listens on a single read channel, prints every received
// line with its timestamp and appends it to the history.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MarlyasDad/cheat-chat/internal/config"
	"github.com/MarlyasDad/cheat-chat/internal/logger"
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
	info := models.NewBuildInfo("cheat-chat-reader", buildVersion, buildDate, buildCommit)
	startup := logger.NewLogger(info.App, os.Stderr)

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		startup.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.ShowVersion {
		fmt.Println(info)
		return
	}

	// stdout carries the received lines
	log, closeLog := logger.NewClientLogger(info.App, cfg.App.LogPath)
	defer closeLog()
	log.Info().EmbedObject(info).Int("port", cfg.Connection.ReaderPort()).Msg("starting reader")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		startup.Fatal().Err(err).Msg("create client storages")
	}

	reader := service.NewReader(cfg.Connection, transport.NewDialer(), storages.History, os.Stdout, log)
	runErr := reader.Run(ctx)

	if err = storages.Close(); err != nil {
		log.Err(err).Msg("error closing storages")
	}
	if runErr != nil {
		closeLog()
		startup.Fatal().Err(runErr).Msg("reader stopped")
	}
}
