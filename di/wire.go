//go:build wireinject
// +build wireinject

package di

import (
	"facttodo/config"
	"facttodo/infras/catfact"
	"facttodo/infras/metrics"
	"facttodo/infras/otel"
	"facttodo/infras/postgres"
	"facttodo/infras/redis"
	healthHandler "facttodo/internal/handlers/health"
	todoHandler "facttodo/internal/handlers/todo"
	"facttodo/shared/cache"
	"facttodo/transport/http"
	"facttodo/transport/http/middleware"
	"facttodo/transport/http/router"

	todoRepository "facttodo/internal/domains/todo/repository"
	todoService "facttodo/internal/domains/todo/service"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	metrics.New,
	catfact.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var todoDomain = wire.NewSet(
	todoRepository.New,
	todoService.New,
	wire.Bind(new(http.SchemaInitializer), new(todoRepository.Todo)),
)

var domains = wire.NewSet(
	todoDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	healthHandler.New,
	todoHandler.New,
	router.New,
)

func InitializeService() (*http.HTTP, func(), error) {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return nil, nil, nil
}
