package repository

import (
	"context"
	"errors"

	"ciblsport-api/internal/model"
)

var ErrNotFound = errors.New("not found")

//go:generate mockery --name Repository
type Repository interface {
	GetByEmail(ctx context.Context, email string) (model.User, error)
	Detail(ctx context.Context, id string) (model.User, error)
	Create(ctx context.Context, opts CreateOptions) (model.User, error)
	List(ctx context.Context) ([]model.User, error)
}
