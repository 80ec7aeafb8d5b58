package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	_ "time/tzdata"

	"solar_pipeline/internal/adapter/persistence"
	"solar_pipeline/internal/cli"
	"solar_pipeline/internal/infrastructure/config"
	"solar_pipeline/internal/infrastructure/logging"
	"solar_pipeline/internal/usecase"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logging.SetLevel(cfg.LogLevel)

	stores, err := persistence.Open(ctx, cfg)
	if err != nil {
		return fmt.Errorf("opening stores: %w", err)
	}
	defer stores.Close()

	app := &cli.App{
		Clients: usecase.NewClientUseCase(stores.Clients, stores.Products, usecase.WithPhoneRegion(cfg.PhoneRegion), usecase.WithLocation(cfg.ClientIDLocation)),
		Migration: func(source string) usecase.IMigrationUseCase {
			return usecase.NewMigrationUseCase(stores.Clients, stores.LegacySource(source), usecase.WithVisitLinker(stores.VisitLinker))
		},
	}
	return cli.NewRootCmd(app).ExecuteContext(ctx)
}
