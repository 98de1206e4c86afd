package http_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"facttodo/config"
	catFactMocks "facttodo/infras/catfact/mocks"
	"facttodo/infras/otel/mocks"
	todoMocks "facttodo/internal/domains/todo/mocks"
	"facttodo/shared/failure"
	transport "facttodo/transport/http"
	"facttodo/transport/http/middleware"
	"facttodo/transport/http/router"
)

func newServer(repo *todoMocks.Memory, cfg *config.Config) *transport.HTTP {
	ot := mocks.NewOtel()
	r := router.Compose(repo, catFactMocks.NewStatic("cat fact"), ot, nil)

	return transport.New(cfg, r, middleware.NewAppMiddleware(ot, cfg, nil, nil), repo)
}

func TestHTTP_Handler(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.CORS.Enable = true
	cfg.App.CORS.AllowedOrigins = []string{"https://example.com"}
	cfg.App.CORS.AllowedMethods = []string{http.MethodGet, http.MethodPost}

	server := httptest.NewServer(newServer(todoMocks.NewMemory(), cfg).Handler())
	defer server.Close()

	req, err := http.NewRequest(http.MethodGet, server.URL+"/health", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "https://example.com")

	resp, err := server.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
	assert.Equal(t, "https://example.com", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestHTTP_ServeFailsBeforeListeningOnSchemaError(t *testing.T) {
	repo := todoMocks.NewMemory()
	repo.Fail(errors.New("permission denied for schema public"))

	cfg := &config.Config{}
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = "0"

	err := newServer(repo, cfg).Serve(context.Background())

	require.Error(t, err)
	assert.Equal(t, failure.KindInit, failure.KindOf(err))
	assert.True(t, failure.KindOf(err).Fatal())
}

func TestHTTP_ServeStopsOnCancel(t *testing.T) {
	cfg := &config.Config{}
	cfg.Server.Env = "development"
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = "0"

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, newServer(todoMocks.NewMemory(), cfg).Serve(ctx))
}
