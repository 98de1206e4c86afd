package mocks

import (
	"context"
	"facttodo/infras/catfact"
)

type static struct {
	fact string
	err  error
}

func (s *static) Fetch(_ context.Context) (string, error) {
	return s.fact, s.err
}

// NewStatic returns a fact lookup that always answers with fact.
func NewStatic(fact string) catfact.CatFact {
	return &static{fact: fact}
}

// NewFailing returns a fact lookup that always fails with err.
func NewFailing(err error) catfact.CatFact {
	return &static{err: err}
}
