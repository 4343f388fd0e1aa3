package services_test

import (
	"context"
	"errors"
)

// passTx runs fn directly and counts units of work.
type passTx struct {
	calls int
}

func (p *passTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	p.calls++
	return fn(ctx)
}

var errDB = errors.New("db error")

func ptr[T any](v T) *T { return &v }
