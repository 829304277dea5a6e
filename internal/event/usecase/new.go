package usecase

import (
	"ciblsport-api/internal/dispatch"
	"ciblsport-api/internal/event"
	"ciblsport-api/internal/event/repository"
	pkgLog "ciblsport-api/pkg/log"
)

type usecase struct {
	l          pkgLog.Logger
	repo       repository.Repository
	dispatcher *dispatch.Dispatcher
}

func New(l pkgLog.Logger, repo repository.Repository, dispatcher *dispatch.Dispatcher) event.UseCase {
	return &usecase{
		l:          l,
		repo:       repo,
		dispatcher: dispatcher,
	}
}
