package usecase

import (
	"ciblsport-api/internal/dispatch"
	eventRepo "ciblsport-api/internal/event/repository"
	"ciblsport-api/internal/result"
	"ciblsport-api/internal/result/repository"
	pkgLog "ciblsport-api/pkg/log"
)

type usecase struct {
	l          pkgLog.Logger
	repo       repository.Repository
	eventRepo  eventRepo.Repository
	dispatcher *dispatch.Dispatcher
}

func New(l pkgLog.Logger, repo repository.Repository, evRepo eventRepo.Repository, dispatcher *dispatch.Dispatcher) result.UseCase {
	return &usecase{
		l:          l,
		repo:       repo,
		eventRepo:  evRepo,
		dispatcher: dispatcher,
	}
}
