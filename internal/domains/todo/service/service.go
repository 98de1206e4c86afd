package service

import (
	"context"
	"facttodo/infras/catfact"
	"facttodo/infras/otel"
	"facttodo/internal/domains/todo/model/dto"
	"facttodo/internal/domains/todo/repository"
	"facttodo/shared/constant"
	"facttodo/shared/failure"
	"fmt"

	"github.com/rs/zerolog/log"
)

type Todo interface {
	GetAll(ctx context.Context) (dto.TodoResponses, error)
	Create(ctx context.Context) (dto.TodoResponse, error)
}

type serviceImpl struct {
	repo    repository.Todo
	catFact catfact.CatFact
	otel    otel.Otel
}

func New(repo repository.Todo, catFact catfact.CatFact, otel otel.Otel) Todo {
	return &serviceImpl{
		repo:    repo,
		catFact: catFact,
		otel:    otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.TodoResponses, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	todos, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Str("kind", failure.KindOf(err).String()).Msg("failed to get todos")

		return nil, fmt.Errorf("failed to get todos: %w", err)
	}

	res.FromModels(todos)

	return res, nil
}

// Create names a new todo after a freshly fetched fact. Nothing is written when the fetch fails,
// and a fact whose insert fails is dropped.
func (s *serviceImpl) Create(ctx context.Context) (res dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	fact, err := s.catFact.Fetch(ctx)
	if err != nil {
		log.Error().Err(err).Str("kind", failure.KindOf(err).String()).Msg("failed to fetch cat fact")

		return res, fmt.Errorf("failed to fetch todo name: %w", err)
	}

	todo, err := s.repo.Insert(ctx, fact)
	if err != nil {
		log.Error().Err(err).Str("kind", failure.KindOf(err).String()).Msg("failed to create todo")

		return res, fmt.Errorf("failed to create todo: %w", err)
	}

	scope.SetAttribute("todo.id", todo.ID)
	res.FromModel(todo)

	return res, nil
}
