package mocks

import (
	"cmp"
	"context"
	"errors"
	"facttodo/internal/domains/todo/model"
	"facttodo/internal/domains/todo/repository"
	"facttodo/shared/failure"
	"slices"
	"sync"
)

// Memory is an in-process Todo store. Ids start after the highest seeded id.
type Memory struct {
	mu     sync.Mutex
	todos  []model.Todo
	nextID int64
	err    error
}

var _ repository.Todo = (*Memory)(nil)

func NewMemory(seed ...model.Todo) *Memory {
	m := &Memory{nextID: 1}

	for _, todo := range seed {
		m.todos = append(m.todos, todo)
		m.nextID = max(m.nextID, todo.ID+1)
	}

	return m
}

// Fail makes every following call return err, wrapped as a query failure. A nil err heals the store.
func (m *Memory) Fail(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.err = err
}

func (m *Memory) GetAll(_ context.Context) ([]model.Todo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return nil, failure.QueryError(m.err)
	}

	todos := slices.Clone(m.todos)
	if todos == nil {
		todos = []model.Todo{}
	}

	slices.SortFunc(todos, func(a, b model.Todo) int {
		return cmp.Compare(a.ID, b.ID)
	})

	return todos, nil
}

func (m *Memory) Insert(_ context.Context, name string) (model.Todo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return model.Todo{}, failure.QueryError(m.err)
	}

	if name == "" {
		return model.Todo{}, failure.QueryError(errors.New("todo name must not be empty"))
	}

	todo := model.Todo{ID: m.nextID, Name: name}
	m.todos = append(m.todos, todo)
	m.nextID++

	return todo, nil
}

func (m *Memory) InitSchema(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return failure.InitError(m.err)
	}

	return nil
}
