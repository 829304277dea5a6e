package repository

import (
	"context"
	"errors"

	"ciblsport-api/internal/model"
)

var ErrNotFound = errors.New("not found")

//go:generate mockery --name Repository
type Repository interface {
	Create(ctx context.Context, opts CreateOptions) (model.Result, error)
	Update(ctx context.Context, opts UpdateOptions) (model.Result, error)
	Delete(ctx context.Context, id string) error
	Detail(ctx context.Context, id string) (model.Result, error)
	ListByEvent(ctx context.Context, eventID string) ([]model.Result, error)
	ListByAthlete(ctx context.Context, athleteID string) ([]model.Result, error)
}
