package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata"

	"solar_pipeline/internal/adapter/http/routes"
	"solar_pipeline/internal/infrastructure/config"
	"solar_pipeline/internal/infrastructure/logging"

	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
)

// @title           Solar Pipeline API
// @version         1.0
// @description     Sales pipeline for residential solar installs: clients, stages, pricing and the product catalog.

// @host localhost:8080

// @BasePath  /v1

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := logging.GetLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.WithError(err).Fatal("invalid configuration")
	}
	logging.SetLevel(cfg.LogLevel)
	if os.Getenv(gin.EnvGinMode) == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := routes.Run(ctx, cfg); err != nil {
		logger.WithError(err).Fatal("failed to start the application")
	}
}
