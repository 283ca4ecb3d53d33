package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/matifood/catalog-service/config"
	"github.com/matifood/catalog-service/internal/app"
	"github.com/rs/zerolog/log"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := app.App{
		Config: config.CreateNewConfig(),
	}

	if err := server.Setup(); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize service")
	}

	go func() {
		if err := server.Start(); err != nil {
			log.Fatal().Err(err).Msg("Server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down")

	if err := server.StopServer(); err != nil {
		log.Error().Err(err).Msg("Failed to shut down cleanly")
	}
}
