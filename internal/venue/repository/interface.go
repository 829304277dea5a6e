package repository

import (
	"context"
	"errors"

	"ciblsport-api/internal/model"
)

var ErrNotFound = errors.New("not found")

//go:generate mockery --name Repository
type Repository interface {
	List(ctx context.Context) ([]model.Venue, error)
	Detail(ctx context.Context, id string) (model.Venue, error)
	Create(ctx context.Context, v model.Venue) (model.Venue, error)
}
