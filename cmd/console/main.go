package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/ogurasousui/ems-console/internal/adapters/console"
	"github.com/ogurasousui/ems-console/internal/adapters/emsapi"
	"github.com/ogurasousui/ems-console/internal/adapters/state"
	"github.com/ogurasousui/ems-console/internal/core/app"
	"github.com/ogurasousui/ems-console/internal/core/archive"
	"github.com/ogurasousui/ems-console/internal/core/dashboard"
	"github.com/ogurasousui/ems-console/internal/core/editor"
	"github.com/ogurasousui/ems-console/internal/core/lookup"
	"github.com/ogurasousui/ems-console/internal/core/past"
	"github.com/ogurasousui/ems-console/internal/core/roster"
	"github.com/ogurasousui/ems-console/internal/core/session"
	"github.com/ogurasousui/ems-console/internal/platform/config"
	"github.com/ogurasousui/ems-console/internal/platform/debounce"
	"github.com/ogurasousui/ems-console/internal/platform/rest"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// .env は存在しなくても構いません。
	_ = godotenv.Load()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "assets/local.yaml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if lvl, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		logger.SetLevel(lvl)
	}
	logEntry := logrus.NewEntry(logger)

	store := state.NewFileStore(cfg.Session.StateFile)
	api := rest.NewClient(cfg.API.BaseURL, cfg.API.RequestTimeout, store, logEntry)
	gateway := emsapi.NewGateway(api)

	sessions := session.NewStore(gateway, store, logEntry)
	lookups := lookup.NewCache(gateway, logEntry)

	surface := console.NewSurface(os.Stdout)

	employees := roster.NewController(gateway, sessions, debounce.New(cfg.Search.DebounceInterval), surface, logEntry)
	editing := editor.NewController(gateway, lookups, employees, surface, logEntry)
	archiving := archive.NewController(gateway, employees, surface, logEntry)
	stats := dashboard.NewController(gateway, surface, logEntry)
	pastPage := past.NewController(gateway, surface, logEntry)

	shell := app.New(sessions, lookups, stats, employees, pastPage, surface, logEntry)

	loop := console.NewLoop(shell, employees, editing, archiving, surface, os.Stdin, os.Stdout, logEntry)
	if err := loop.Run(ctx); err != nil {
		log.Fatalf("console stopped with error: %v", err)
	}
}
