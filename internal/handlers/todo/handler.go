package todo

import (
	"context"
	"facttodo/infras/otel"
	"facttodo/internal/domains/todo/service"
	"facttodo/shared/constant"
	"facttodo/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service service.Todo
	otel    otel.Otel
}

func New(service service.Todo, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/todo", response.Handle(handler.GetTodos))
	router.Post("/todo", response.Handle(handler.CreateTodo))
}

// detach keeps request values such as the trace span but drops cancellation,
// so a client that disconnects does not abort store or upstream calls already in flight.
func detach(request *http.Request) context.Context {
	return context.WithoutCancel(request.Context())
}

// GetTodos lists every todo item.
// @Summary List todo items
// @Description Retrieve all todo items ordered by id.
// @Tags Todo
// @Produce json
// @Success 200 {array} dto.TodoResponse
// @Failure 500 {object} response.Error
// @Router /todo [get]
func (handler *Handler) GetTodos(writer http.ResponseWriter, request *http.Request) error {
	ctx, scope := handler.otel.NewScope(detach(request), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTodos")
	defer scope.End()

	todos, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)

		return err
	}

	scope.AddEvent("Todos retrieved successfully")

	response.WithJSON(writer, http.StatusOK, todos)

	return nil
}

// CreateTodo creates a todo item named after a random cat fact. The request body is ignored.
// @Summary Create a todo item
// @Description Fetch a cat fact and store it as a new unchecked todo item.
// @Tags Todo
// @Produce json
// @Success 200 {object} dto.TodoResponse
// @Failure 500 {object} response.Error
// @Router /todo [post]
func (handler *Handler) CreateTodo(writer http.ResponseWriter, request *http.Request) error {
	ctx, scope := handler.otel.NewScope(detach(request), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTodo")
	defer scope.End()

	todo, err := handler.service.Create(ctx)
	if err != nil {
		scope.TraceError(err)

		return err
	}

	scope.AddEvent("Todo created successfully")

	response.WithJSON(writer, http.StatusOK, todo)

	return nil
}
