package main

import (
	"context"
	"fmt"

	"github.com/artarona/WORK-PAGINAWEB-IA/internal/adapter"
	"github.com/artarona/WORK-PAGINAWEB-IA/internal/config"
	"github.com/artarona/WORK-PAGINAWEB-IA/internal/handler"
	"github.com/artarona/WORK-PAGINAWEB-IA/internal/logger"
	"github.com/artarona/WORK-PAGINAWEB-IA/internal/server"
	"github.com/artarona/WORK-PAGINAWEB-IA/internal/service"
	"github.com/artarona/WORK-PAGINAWEB-IA/internal/store"
	"github.com/artarona/WORK-PAGINAWEB-IA/internal/workers"
	"github.com/artarona/WORK-PAGINAWEB-IA/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("dante-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	catalogDB, err := store.NewConnectSQLite(ctx, cfg.Storage.Catalog, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to catalog database")
	}

	// Contact persistence is optional: without a DSN the API keeps serving
	// the catalog and the assistant, and contact endpoints report 503.
	var contactsDB *store.DB
	if cfg.Storage.DB.DSN != "" {
		contactsDB, err = store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
		if err != nil {
			log.Fatal().Err(err).Msg("error connecting to contacts database")
		}

		if err = migrations.Migrate(contactsDB.DB); err != nil {
			log.Fatal().Err(err).Msg("error running migrations")
		}
	} else {
		log.Warn().Msg("no contacts DSN configured, contact persistence disabled")
	}

	storages := store.NewStorages(catalogDB, contactsDB, cfg.Storage.Catalog, log)

	if err = storages.Properties.Reseed(ctx); err != nil {
		log.Fatal().Err(err).Msg("error seeding property catalog")
	}

	assistant := adapter.NewGeminiClient(cfg.Assistant, log)
	services := service.NewServices(storages, assistant, *cfg, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	background := workers.NewWorkers(
		workers.NewFilterRefreshWorker(services.Properties, cfg.Workers, log),
	)

	srv, err := server.NewServer(handlers, background, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
