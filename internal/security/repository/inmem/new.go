package inmem

import (
	"sync"

	"ciblsport-api/internal/model"
	"ciblsport-api/internal/security/repository"
	pkgLog "ciblsport-api/pkg/log"
)

type incidentRepository struct {
	l pkgLog.Logger

	mu        sync.RWMutex
	incidents map[string]model.Incident
}

// NewIncidentRepository creates an in-memory incident repository.
func NewIncidentRepository(l pkgLog.Logger) repository.IncidentRepository {
	return &incidentRepository{
		l:         l,
		incidents: make(map[string]model.Incident),
	}
}

type alertRepository struct {
	l pkgLog.Logger

	mu     sync.RWMutex
	alerts map[string]model.Alert
}

// NewAlertRepository creates an in-memory alert repository.
func NewAlertRepository(l pkgLog.Logger) repository.AlertRepository {
	return &alertRepository{
		l:      l,
		alerts: make(map[string]model.Alert),
	}
}
