package main

import (
	"context"
	"facttodo/config"
	"facttodo/infras/otel"
	"facttodo/infras/postgres"
	"facttodo/internal/domains/todo/repository"
	"facttodo/shared/failure"
	"facttodo/shared/logger"
	"os"

	"github.com/rs/zerolog/log"
)

const (
	argLength = 2
)

func main() {
	if len(os.Args) < argLength {
		log.Fatal().Msg("Command (init/reset) is required")
	}

	cfg := config.Get()

	logger.InitLogger(cfg)
	logger.SetLogLevel(cfg)

	conn, cleanup, err := postgres.New(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer cleanup()

	tracer, stopTracer, err := otel.New(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize tracer")
	}
	defer stopTracer()

	ctx := context.Background()

	switch os.Args[1] {
	case "init":
		err = repository.New(conn, cfg, tracer).InitSchema(ctx)
	case "reset":
		err = repository.Reset(ctx, conn)
	default:
		log.Error().Str("command", os.Args[1]).Msg("Invalid command. Use 'init' or 'reset'")
		stopTracer()
		cleanup()
		os.Exit(1)
	}

	if err != nil {
		log.Error().Err(err).Str("kind", failure.KindOf(err).String()).Msg("Database command failed")
		stopTracer()
		cleanup()
		os.Exit(1)
	}

	log.Info().Str("command", os.Args[1]).Msg("Database command completed")
}
