package http

import (
	"ciblsport-api/internal/security"
	pkgLog "ciblsport-api/pkg/log"
)

type Handler struct {
	l  pkgLog.Logger
	uc security.UseCase
}

func New(l pkgLog.Logger, uc security.UseCase) *Handler {
	return &Handler{
		l:  l,
		uc: uc,
	}
}
