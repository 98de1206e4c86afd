package health

import (
	"facttodo/shared/constant"
	"facttodo/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type Handler struct{}

func New() Handler {
	return Handler{}
}

func (h *Handler) Router(router chi.Router) {
	router.Get("/health", response.Handle(h.Health))
}

// Health is a liveness probe and does not touch any dependency.
// @Summary Liveness probe
// @Tags Health
// @Produce plain
// @Success 200 {string} string "OK"
// @Router /health [get]
func (h *Handler) Health(writer http.ResponseWriter, _ *http.Request) error {
	response.WithText(writer, http.StatusOK, constant.ResponseHealthy)

	return nil
}
