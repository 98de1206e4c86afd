package handler

import (
	"context"
	"facttodo/config"
	"facttodo/di"
	"facttodo/shared/logger"
	"facttodo/transport/http/response"
	"net/http"
	"sync"

	"github.com/rs/zerolog/log"
)

var (
	once    sync.Once
	app     http.Handler
	initErr error
)

// setup builds the service once per instance. The pool stays open for the instance lifetime.
func setup() {
	cfg := config.Get()

	logger.InitLogger(cfg)

	logger.SetLogLevel(cfg)

	server, _, err := di.InitializeService()
	if err != nil {
		initErr = err

		return
	}

	if err := server.Schema.InitSchema(context.Background()); err != nil {
		initErr = err

		return
	}

	app = server.Handler()
}

// Handler is the serverless entrypoint, serving the same routes as cmd/app.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(setup)

	if initErr != nil {
		log.Error().Err(initErr).Msg("Service unavailable")
		response.WithError(w, initErr)

		return
	}

	app.ServeHTTP(w, r)
}
