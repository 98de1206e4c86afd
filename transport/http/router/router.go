package router

import (
	"facttodo/infras/catfact"
	"facttodo/infras/metrics"
	"facttodo/infras/otel"
	"facttodo/internal/domains/todo/repository"
	"facttodo/internal/domains/todo/service"
	"facttodo/internal/handlers/health"
	"facttodo/internal/handlers/todo"
	"facttodo/shared/failure"
	"facttodo/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
)

const metricsPath = "/metrics"

type DomainHandlers struct {
	Health health.Handler
	Todo   todo.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	Metrics        *metrics.Metrics
}

func New(domainHandlers DomainHandlers, metrics *metrics.Metrics) Router {
	return Router{
		DomainHandlers: domainHandlers,
		Metrics:        metrics,
	}
}

// Compose builds the handlers on top of the given ports. Any implementation of
// the ports can be passed, which is how tests swap stores and fact sources.
func Compose(repo repository.Todo, catFact catfact.CatFact, otel otel.Otel, metrics *metrics.Metrics) Router {
	return New(DomainHandlers{
		Health: health.New(),
		Todo:   todo.New(service.New(repo, catFact, otel), otel),
	}, metrics)
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.NotFound(response.Handle(func(_ http.ResponseWriter, _ *http.Request) error {
		return failure.NotFound(failure.MessageNotFound)
	}))
	router.MethodNotAllowed(response.Handle(func(_ http.ResponseWriter, _ *http.Request) error {
		return failure.MethodNotAllowed(failure.MessageMethodNotAllowed)
	}))

	r.DomainHandlers.Health.Router(router)
	r.DomainHandlers.Todo.Router(router)

	if r.Metrics != nil {
		router.Method(http.MethodGet, metricsPath, r.Metrics.Handler())
	}
}

// Handler returns the routes alone, without the application middleware.
func (r *Router) Handler() http.Handler {
	mux := chi.NewRouter()
	r.SetupRoutes(mux)

	return mux
}
