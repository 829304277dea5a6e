package result

import (
	"context"

	"ciblsport-api/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	AddResult(ctx context.Context, sc model.Scope, ip AddResultInput) (model.Result, error)
	UpdateResult(ctx context.Context, sc model.Scope, ip UpdateResultInput) (model.Result, error)
	DeleteResult(ctx context.Context, sc model.Scope, id string) error
	GetEventResults(ctx context.Context, sc model.Scope, eventID string) ([]model.Result, error)
	GetAthleteResults(ctx context.Context, sc model.Scope, athleteID string) ([]model.Result, error)
}
