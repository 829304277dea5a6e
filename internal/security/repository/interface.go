package repository

import (
	"context"
	"errors"

	"ciblsport-api/internal/model"
)

var ErrNotFound = errors.New("not found")

//go:generate mockery --name IncidentRepository
type IncidentRepository interface {
	Create(ctx context.Context, opts CreateIncidentOptions) (model.Incident, error)
	Update(ctx context.Context, opts UpdateIncidentOptions) (model.Incident, error)
	Detail(ctx context.Context, id string) (model.Incident, error)
	List(ctx context.Context, opts ListIncidentOptions) ([]model.Incident, error)
}

//go:generate mockery --name AlertRepository
type AlertRepository interface {
	Create(ctx context.Context, opts CreateAlertOptions) (model.Alert, error)
	Update(ctx context.Context, opts UpdateAlertOptions) (model.Alert, error)
	Detail(ctx context.Context, id string) (model.Alert, error)
	ListActive(ctx context.Context) ([]model.Alert, error)
	List(ctx context.Context) ([]model.Alert, error)
}
