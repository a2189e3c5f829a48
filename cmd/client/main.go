// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/griswall/playoff-pool/internal/adapter"
	"github.com/griswall/playoff-pool/internal/client"
	"github.com/griswall/playoff-pool/internal/config"
	"github.com/griswall/playoff-pool/internal/logger"
	"github.com/griswall/playoff-pool/internal/service"
	"github.com/griswall/playoff-pool/internal/store"
	"github.com/griswall/playoff-pool/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log := logger.NewClientLogger("playoff-pool", cfg.App.LogFile)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer storages.Close()

	resolver := config.NewDefaultResolver(cfg.DocumentPath, log)
	sdk := adapter.NewRESTSDK(log)

	services, err := service.NewServices(resolver, func() adapter.SDK { return sdk }, cfg.App.AdminPolicy, adapter.ClientOptions{
		NavigationURL:   cfg.App.NavigationURL,
		Storage:         storages.SessionRepository,
		RequestTimeout:  cfg.Adapter.RequestTimeout,
		RefreshInterval: cfg.Adapter.RefreshInterval,
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create services")
	}
	services.SetUserEmail(cfg.App.UserEmail)

	app, err := client.NewApp(services, cfg.Command, os.Stdout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Str("command", cfg.Command).Msg("client run error")
		fmt.Fprintln(os.Stderr, err)
		storages.Close()
		os.Exit(1)
	}
}
