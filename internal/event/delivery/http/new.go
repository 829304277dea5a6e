package http

import (
	"ciblsport-api/internal/event"
	pkgLog "ciblsport-api/pkg/log"
)

type Handler struct {
	l  pkgLog.Logger
	uc event.UseCase
}

func New(l pkgLog.Logger, uc event.UseCase) *Handler {
	return &Handler{
		l:  l,
		uc: uc,
	}
}
