// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MarlyasDad

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MarlyasDad/cheat-chat/internal/client"
	"github.com/MarlyasDad/cheat-chat/internal/config"
	"github.com/MarlyasDad/cheat-chat/internal/logger"
	"github.com/MarlyasDad/cheat-chat/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	info := models.NewBuildInfo("cheat-chat", buildVersion, buildDate, buildCommit)
	startup := logger.NewLogger(info.App, os.Stderr)

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		startup.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.ShowVersion {
		fmt.Println(info)
		return
	}

	// stdout belongs to the terminal UI
	log, closeLog := logger.NewClientLogger(info.App, cfg.App.LogPath)
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info().
		EmbedObject(info).
		Str("host", cfg.Connection.Host).
		Int("read_port", cfg.Connection.ReadPort).
		Int("write_port", cfg.Connection.WritePort).
		Msg("starting client")

	app, err := client.Build(ctx, cfg, info, log)
	if err != nil {
		startup.Fatal().Err(err).Msg("init client app error")
	}

	runErr := app.Run(ctx)
	if err = app.Close(); err != nil {
		log.Err(err).Msg("error closing storages")
	}

	if runErr != nil {
		closeLog()
		startup.Fatal().Err(runErr).Msg("client run error")
	}
}
