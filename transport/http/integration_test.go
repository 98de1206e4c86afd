//go:build integration

package http_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"facttodo/config"
	"facttodo/infras/catfact"
	"facttodo/infras/otel/mocks"
	"facttodo/infras/postgres"
	"facttodo/internal/domains/todo/model/dto"
	"facttodo/internal/domains/todo/repository"
	transport "facttodo/transport/http"
	"facttodo/transport/http/middleware"
	"facttodo/transport/http/router"
)

const (
	postgresImage    = "postgres:16-alpine"
	postgresUser     = "facttodo"
	postgresPassword = "facttodo"
	postgresDB       = "facttodo"
)

// setupPostgres starts a throwaway Postgres and returns a config pointing at it.
func setupPostgres(t *testing.T) *config.Config {
	t.Helper()
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        postgresImage,
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     postgresUser,
			"POSTGRES_PASSWORD": postgresPassword,
			"POSTGRES_DB":       postgresDB,
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatalf("Failed to start postgres container: %v", err)
	}

	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("Failed to terminate postgres container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)

	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.DB.Postgres.Host = host
	cfg.DB.Postgres.Port = port.Port()
	cfg.DB.Postgres.Username = postgresUser
	cfg.DB.Postgres.Password = postgresPassword
	cfg.DB.Postgres.Name = postgresDB
	cfg.DB.Postgres.SSLMode = "disable"
	cfg.DB.Postgres.MaxRetry = 5
	cfg.DB.Postgres.RetryWaitTime = 1
	cfg.DB.Postgres.MaxOpenConnections = 4
	cfg.DB.Postgres.MaxIdleConnections = 2
	cfg.DB.Postgres.AcquireTimeoutSeconds = 5
	cfg.DB.Postgres.InitScript = "../../db.sql"

	return cfg
}

// setupStore opens the pool, creates the table and empties it.
func setupStore(t *testing.T, cfg *config.Config) (repository.Todo, *postgres.Connection) {
	t.Helper()

	conn, cleanup, err := postgres.New(cfg)
	require.NoError(t, err)
	t.Cleanup(cleanup)

	repo := repository.New(conn, cfg, mocks.NewOtel())

	ctx := context.Background()
	require.NoError(t, repo.InitSchema(ctx))
	require.NoError(t, repository.Reset(ctx, conn))

	return repo, conn
}

func newFactUpstream(t *testing.T) *httptest.Server {
	t.Helper()

	var calls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = fmt.Fprintf(w, `{"text":"wiremock cat fact %d"}`, calls.Add(1))
	}))
	t.Cleanup(server.Close)

	return server
}

func TestIntegration_Full(t *testing.T) {
	cfg := setupPostgres(t)
	repo, _ := setupStore(t, cfg)
	upstream := newFactUpstream(t)

	r := router.Compose(repo, catfact.NewClient(upstream.Client(), upstream.URL, mocks.NewOtel()), mocks.NewOtel(), nil)
	handler := r.Handler()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/todo", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", rec.Body.String())

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/todo", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":1,"name":"wiremock cat fact 1","checked":false}`, rec.Body.String())

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/todo", nil))
	assert.JSONEq(t, `[{"id":1,"name":"wiremock cat fact 1","checked":false}]`, rec.Body.String())
}

func TestIntegration_EndToEnd(t *testing.T) {
	cfg := setupPostgres(t)
	repo, _ := setupStore(t, cfg)
	upstream := newFactUpstream(t)

	ot := mocks.NewOtel()
	r := router.Compose(repo, catfact.NewClient(upstream.Client(), upstream.URL, ot), ot, nil)
	app := transport.New(cfg, r, middleware.NewAppMiddleware(ot, cfg, nil, nil), repo)

	server := httptest.NewServer(app.Handler())
	defer server.Close()

	client := server.Client()

	resp, err := client.Get(server.URL + "/health")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "OK", string(body))

	const n = 5
	for range n {
		resp, err := client.Post(server.URL+"/todo", "application/json", nil)
		require.NoError(t, err)
		_ = resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	resp, err = client.Get(server.URL + "/todo")
	require.NoError(t, err)
	defer resp.Body.Close()

	var todos dto.TodoResponses
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&todos))
	require.Len(t, todos, n)

	for i, todo := range todos {
		assert.Equal(t, int64(i+1), todo.ID)
		assert.Equal(t, fmt.Sprintf("wiremock cat fact %d", i+1), todo.Name)
		assert.False(t, todo.Checked)
	}
}

func TestIntegration_ResetRestartsIDs(t *testing.T) {
	cfg := setupPostgres(t)
	repo, conn := setupStore(t, cfg)
	ctx := context.Background()

	_, err := repo.Insert(ctx, "before reset")
	require.NoError(t, err)

	require.NoError(t, repository.Reset(ctx, conn))

	todo, err := repo.Insert(ctx, "after reset")
	require.NoError(t, err)
	assert.Equal(t, int64(1), todo.ID)

	require.NoError(t, repo.InitSchema(ctx), "schema init must be idempotent")

	todos, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, todos, 1)
	assert.Zero(t, conn.Pool.Stats().InUse)
}
