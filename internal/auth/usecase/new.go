package usecase

import (
	"ciblsport-api/internal/auth"
	"ciblsport-api/internal/auth/repository"
	pkgLog "ciblsport-api/pkg/log"
	"ciblsport-api/pkg/scope"
)

type usecase struct {
	l      pkgLog.Logger
	repo   repository.Repository
	jwtMgr scope.Manager
}

func New(l pkgLog.Logger, repo repository.Repository, jwtMgr scope.Manager) auth.UseCase {
	return &usecase{
		l:      l,
		repo:   repo,
		jwtMgr: jwtMgr,
	}
}
