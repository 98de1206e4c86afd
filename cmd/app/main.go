package main

import (
	"context"
	"facttodo/config"
	"facttodo/di"
	"facttodo/shared/failure"
	"facttodo/shared/logger"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)

	logger.SetLogLevel(cfg)

	http, cleanup, err := di.InitializeService()
	if err != nil {
		log.Fatal().Err(err).Str("kind", failure.KindOf(err).String()).Msg("Failed to initialize service")
	}
	defer cleanup()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := http.Serve(ctx); err != nil {
		log.Error().Err(err).Str("kind", failure.KindOf(err).String()).Msg("HTTP server stopped")
		cleanup()
		os.Exit(1)
	}
}
