package http

import (
	"ciblsport-api/internal/venue"
	pkgLog "ciblsport-api/pkg/log"
)

type Handler struct {
	l  pkgLog.Logger
	uc venue.UseCase
}

func New(l pkgLog.Logger, uc venue.UseCase) *Handler {
	return &Handler{
		l:  l,
		uc: uc,
	}
}
