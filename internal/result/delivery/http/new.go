package http

import (
	"ciblsport-api/internal/result"
	pkgLog "ciblsport-api/pkg/log"
)

type Handler struct {
	l  pkgLog.Logger
	uc result.UseCase
}

func New(l pkgLog.Logger, uc result.UseCase) *Handler {
	return &Handler{
		l:  l,
		uc: uc,
	}
}
