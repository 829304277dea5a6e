package usecase

import (
	"time"

	"ciblsport-api/internal/notification"
	"ciblsport-api/internal/notification/repository"
	"ciblsport-api/pkg/discord"
	pkgLog "ciblsport-api/pkg/log"
)

const defaultSimulatorInterval = 15 * time.Second

type usecase struct {
	l           pkgLog.Logger
	repo        repository.Repository
	prefRepo    repository.PreferenceRepository
	pushChannel discord.IDiscord

	simulatorInterval time.Duration
}

type Config struct {
	SimulatorInterval time.Duration
}

// New creates the notification usecase. pushChannel may be nil, in which
// case desktop delivery is skipped.
func New(l pkgLog.Logger, repo repository.Repository, prefRepo repository.PreferenceRepository, pushChannel discord.IDiscord, cfg Config) notification.UseCase {
	interval := cfg.SimulatorInterval
	if interval <= 0 {
		interval = defaultSimulatorInterval
	}
	return &usecase{
		l:                 l,
		repo:              repo,
		prefRepo:          prefRepo,
		pushChannel:       pushChannel,
		simulatorInterval: interval,
	}
}
