package usecase

import (
	"time"

	"ciblsport-api/internal/dispatch"
	"ciblsport-api/internal/security"
	"ciblsport-api/internal/security/repository"
	pkgLog "ciblsport-api/pkg/log"
)

const (
	// autoAlertTTL is how long an alert synthesized from a high-severity
	// incident stays up before the sweeper takes it down.
	autoAlertTTL = 2 * time.Hour

	defaultSweepInterval = 60 * time.Second
)

type usecase struct {
	l             pkgLog.Logger
	incidentRepo  repository.IncidentRepository
	alertRepo     repository.AlertRepository
	dispatcher    *dispatch.Dispatcher
	sweepInterval time.Duration
}

type Config struct {
	SweepInterval time.Duration
}

func New(l pkgLog.Logger, incidentRepo repository.IncidentRepository, alertRepo repository.AlertRepository, dispatcher *dispatch.Dispatcher, cfg Config) security.UseCase {
	interval := cfg.SweepInterval
	if interval <= 0 {
		interval = defaultSweepInterval
	}
	return &usecase{
		l:             l,
		incidentRepo:  incidentRepo,
		alertRepo:     alertRepo,
		dispatcher:    dispatcher,
		sweepInterval: interval,
	}
}
