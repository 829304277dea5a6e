package http

import (
	"ciblsport-api/internal/notification"
	pkgLog "ciblsport-api/pkg/log"
)

type Handler struct {
	l  pkgLog.Logger
	uc notification.UseCase
}

func New(l pkgLog.Logger, uc notification.UseCase) *Handler {
	return &Handler{
		l:  l,
		uc: uc,
	}
}
