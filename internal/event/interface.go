package event

import (
	"context"

	"ciblsport-api/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, ip CreateInput) (model.Event, error)
	List(ctx context.Context, sc model.Scope, ip ListInput) (ListOutput, error)
	Detail(ctx context.Context, sc model.Scope, id string) (model.Event, error)
	UpdateStatus(ctx context.Context, sc model.Scope, ip UpdateStatusInput) (model.Event, error)
}
