package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"facttodo/config"
	"facttodo/infras/otel"
	"facttodo/infras/postgres"
	"facttodo/internal/domains/todo/model"
	"facttodo/shared/constant"
	"facttodo/shared/failure"
	"fmt"
	"os"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	querySelectAll = "SELECT id, name, checked FROM todo ORDER BY id ASC"
	queryInsert    = "INSERT INTO todo (name) VALUES ($1) RETURNING id, name, checked"
	queryReset     = "TRUNCATE todo RESTART IDENTITY"
)

var errEmptyName = errors.New("todo name must not be empty")

// Todo is the persistence port. Every method returns either its value or a *failure.Failure.
type Todo interface {
	GetAll(ctx context.Context) ([]model.Todo, error)
	Insert(ctx context.Context, name string) (model.Todo, error)
	InitSchema(ctx context.Context) error
}

type repositoryImpl struct {
	db         *postgres.Connection
	otel       otel.Otel
	initScript string
}

func New(db *postgres.Connection, cfg *config.Config, otel otel.Otel) Todo {
	return &repositoryImpl{
		db:         db,
		otel:       otel,
		initScript: cfg.DB.Postgres.InitScript,
	}
}

// acquire checks a connection out of the pool, giving up after the configured acquire timeout.
// The caller must close the returned connection.
func acquire(ctx context.Context, db *postgres.Connection) (*sqlx.Conn, error) {
	acquireCtx, cancel := context.WithTimeout(ctx, db.AcquireTimeout)
	defer cancel()

	conn, err := db.Pool.Connx(acquireCtx)
	if err != nil {
		return nil, failure.PoolError(fmt.Errorf("failed to acquire connection: %w", err))
	}

	return conn, nil
}

func release(conn *sqlx.Conn) {
	if err := conn.Close(); err != nil {
		log.Error().Err(err).Msg("failed to release connection")
	}
}

func (repo *repositoryImpl) GetAll(ctx context.Context) (todos []model.Todo, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelQueryAttributeKey, querySelectAll)

	conn, err := acquire(ctx, repo.db)
	if err != nil {
		return nil, err
	}
	defer release(conn)

	todos = []model.Todo{}
	if err = conn.SelectContext(ctx, &todos, querySelectAll); err != nil {
		return nil, failure.QueryError(fmt.Errorf("failed to select data (%s): %w", model.EntityName, err))
	}

	return todos, nil
}

func (repo *repositoryImpl) Insert(ctx context.Context, name string) (todo model.Todo, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".Insert")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryInsert)

	if name == constant.Empty {
		return todo, failure.QueryError(errEmptyName)
	}

	conn, err := acquire(ctx, repo.db)
	if err != nil {
		return todo, err
	}
	defer release(conn)

	if err = conn.GetContext(ctx, &todo, queryInsert, name); err != nil {
		return model.Todo{}, failure.QueryError(fmt.Errorf("failed to insert data (%s): %w", model.EntityName, err))
	}

	return todo, nil
}

func (repo *repositoryImpl) InitSchema(ctx context.Context) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".InitSchema")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	script, err := os.ReadFile(repo.initScript)
	if err != nil {
		return failure.ConfigError(fmt.Errorf("failed to read init script %s: %w", repo.initScript, err))
	}

	conn, err := acquire(ctx, repo.db)
	if err != nil {
		return err
	}
	defer release(conn)

	if _, err = conn.ExecContext(ctx, string(script)); err != nil {
		return failure.InitError(fmt.Errorf("failed to execute init script %s: %w", repo.initScript, err))
	}

	log.Info().Str("script", repo.initScript).Msg("Database schema initialized")

	return nil
}

// Reset empties the table and restarts its id sequence. It is an administrative action
// for tooling and integration tests, not part of the Todo port.
func Reset(ctx context.Context, db *postgres.Connection) error {
	conn, err := acquire(ctx, db)
	if err != nil {
		return err
	}
	defer release(conn)

	if _, err = conn.ExecContext(ctx, queryReset); err != nil {
		return failure.QueryError(fmt.Errorf("failed to reset table (%s): %w", model.TableName, err))
	}

	return nil
}
