package inmem

import (
	"sync"

	"ciblsport-api/internal/model"
	"ciblsport-api/internal/venue/repository"
	pkgLog "ciblsport-api/pkg/log"
)

type inmemRepository struct {
	l pkgLog.Logger

	mu     sync.RWMutex
	venues map[string]model.Venue
}

// New creates an in-memory venue repository.
func New(l pkgLog.Logger) repository.Repository {
	return &inmemRepository{
		l:      l,
		venues: make(map[string]model.Venue),
	}
}
