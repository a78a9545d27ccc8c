package main

import (
	"context"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/vendkit/modules/vendingapi"
	"github.com/dmitrymomot/vendkit/pkg/config"
	"github.com/dmitrymomot/vendkit/pkg/httpserver"
	"github.com/dmitrymomot/vendkit/pkg/inventory"
	"github.com/dmitrymomot/vendkit/pkg/logger"
	"github.com/dmitrymomot/vendkit/pkg/vending"
)

type appConfig struct {
	Server      httpserver.Config
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"json"`
	CatalogPath string `env:"CATALOG_PATH"`
}

func main() {
	var cfg appConfig
	config.MustLoad(&cfg)

	log := logger.New(
		logger.WithService("vendingd"),
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithFormat(logger.Format(cfg.LogFormat)),
	)
	logger.SetAsDefault(log)

	catalogOpts := []inventory.Option{}
	if cfg.CatalogPath != "" {
		catalogOpts = append(catalogOpts, inventory.WithCatalogFile(cfg.CatalogPath))
	}
	catalog, err := inventory.New(catalogOpts...)
	if err != nil {
		log.Error("failed to load catalog", logger.Error(err))
		os.Exit(1)
	}

	machine := vending.New(
		vending.WithInventory(catalog),
		vending.WithLogger(log),
	)

	svc := vendingapi.New(machine, vendingapi.WithLogger(log))

	ctx := context.Background()

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/health", httpserver.HealthCheckHandler(ctx, log))
	r.Mount("/api", svc.Handle())

	srv := httpserver.NewFromConfig(cfg.Server, httpserver.WithLogger(log))
	if err := srv.Run(ctx, r); err != nil {
		log.Error("server failed", logger.Error(err))
		os.Exit(1)
	}
}
