package security

import (
	"context"

	"ciblsport-api/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Incidents
	AddIncident(ctx context.Context, sc model.Scope, ip AddIncidentInput) (model.Incident, error)
	UpdateIncident(ctx context.Context, sc model.Scope, ip UpdateIncidentInput) (model.Incident, error)
	AddIncidentUpdate(ctx context.Context, sc model.Scope, ip AddIncidentUpdateInput) (model.Incident, error)
	ListIncidents(ctx context.Context, sc model.Scope, ip ListIncidentsInput) ([]model.Incident, error)
	DetailIncident(ctx context.Context, sc model.Scope, id string) (model.Incident, error)
	GetIncidentsByVenue(ctx context.Context, sc model.Scope, venue string) ([]model.Incident, error)

	// Alerts
	CreateAlert(ctx context.Context, sc model.Scope, ip CreateAlertInput) (model.Alert, error)
	DismissAlert(ctx context.Context, sc model.Scope, id string) error
	GetActiveAlerts(ctx context.Context, sc model.Scope) ([]model.Alert, error)

	// SweepExpiredAlerts deactivates alerts whose expiry has passed and
	// returns how many were swept.
	SweepExpiredAlerts(ctx context.Context) (int, error)

	// RunSweeper periodically sweeps expired alerts until ctx is done.
	RunSweeper(ctx context.Context)
}
