package repository

import (
	"context"
	"errors"

	"ciblsport-api/internal/model"
)

var ErrNotFound = errors.New("not found")

//go:generate mockery --name Repository
type Repository interface {
	Create(ctx context.Context, opts CreateOptions) (model.Event, error)
	List(ctx context.Context, opts ListOptions) ([]model.Event, error)
	Detail(ctx context.Context, id string) (model.Event, error)
	Update(ctx context.Context, opts UpdateOptions) (model.Event, error)
}
