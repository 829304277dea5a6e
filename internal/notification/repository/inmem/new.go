package inmem

import (
	"sync"

	"ciblsport-api/internal/model"
	"ciblsport-api/internal/notification/repository"
	pkgLog "ciblsport-api/pkg/log"
)

type inmemRepository struct {
	l pkgLog.Logger

	mu sync.RWMutex
	// feed is kept newest first, bounded by model.MaxNotifications.
	feed []model.Notification
}

// New creates an in-memory notification repository.
func New(l pkgLog.Logger) repository.Repository {
	return &inmemRepository{
		l:    l,
		feed: make([]model.Notification, 0, model.MaxNotifications),
	}
}
