package main

import (
	"context"
	"hotel/config"
	"hotel/di"
	"hotel/helper"
	"hotel/shared/logger"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
)

const closeTimeout = 10 * time.Second

// @title Hotel Booking API
// @version 1.0
// @description Room availability, booking, order lifecycle, reviews and reports.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger()
	logger.Configure(cfg)

	app := di.InitializeService()

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run database migrations")
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Scheduler.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to start scheduler")
	}

	var workers sync.WaitGroup

	workers.Add(1)

	go func() {
		defer workers.Done()

		app.Consumer.Run(ctx)
	}()

	if err := app.HTTP.Serve(ctx); err != nil {
		log.Error().Err(err).Msg("HTTP server stopped with error")
	}

	stop()
	workers.Wait()

	closeApp(app)
}

func closeApp(app *di.App) {
	ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()

	if err := app.Kafka.Close(); err != nil {
		log.Error().Err(err).Msg("Failed to close Kafka client")
	}

	if err := app.Otel.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to flush traces")
	}

	if err := app.DB.Close(); err != nil {
		log.Error().Err(err).Msg("Failed to close database connections")
	}

	log.Info().Msg("Shutdown complete")
}
